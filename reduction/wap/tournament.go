package wap

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/core/parallel"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// Tournament selects how pairwise scores aggregate into a winner.
type Tournament int

const (
	// RoundRobin scores every unordered candidate pair once and tallies a
	// win per pair; most wins takes the prediction, ties going to the
	// smallest label id. Within one pair a zero score goes to the smaller
	// id, matching the training-time preference encoding.
	RoundRobin Tournament = iota

	// MarginSum accumulates the signed pair scores instead of win counts:
	// each pair's score is credited to the smaller id and debited from the
	// larger. Same comparator and tie-break as RoundRobin.
	MarginSum

	// SingleElimination runs a bracket over the ascending candidates, one
	// score per match and n-1 matches total, with a bye for a trailing odd
	// entrant. Cheaper than round-robin for large candidate sets.
	SingleElimination
)

// String returns the string representation of the tournament kind.
func (t Tournament) String() string {
	switch t {
	case RoundRobin:
		return "round_robin"
	case MarginSum:
		return "margin_sum"
	case SingleElimination:
		return "single_elimination"
	default:
		return "unknown"
	}
}

// predictRoundRobin scores all pairs, then tallies wins or margins
// sequentially. The scoring loop may fan out across CPU cores; every score
// lands in its pair's fixed slot, so the tally sees the same values either
// way and the result is identical to the sequential path.
func (w *WAP) predictRoundRobin(ex *costs.Example, cands []int) (model.Prediction, error) {
	n := len(cands)
	numPairs := n * (n - 1) / 2
	pairScores := make([]float64, numPairs)
	example := w.state.Snapshot().Examples

	score := func(scratch *mat.VecDense, start, end int) (err error) {
		defer errors.Recover(&err, opPredict)

		var inst model.Instance
		defer inst.Clear()
		i, j := pairAt(n, start)
		for p := start; p < end; p++ {
			x, offset := w.pairFeatures(scratch, ex, cands[i], cands[j])
			inst.Set(x, 0, 1, offset)
			s, perr := w.base.Predict(&inst)
			if perr != nil {
				return errors.Wrapf(perr, "%s: pair (%d, %d)", opPredict, cands[i], cands[j])
			}
			if cerr := errors.CheckScalar(opPredict, s, example); cerr != nil {
				return cerr
			}
			pairScores[p] = s

			j++
			if j == n {
				i++
				j = i + 1
			}
		}
		return nil
	}

	var err error
	if w.parallelPredict {
		err = parallel.ParallelizeWithThresholdError(numPairs, w.parallelThreshold, func(start, end int) error {
			return score(&mat.VecDense{}, start, end)
		})
	} else {
		w.mu.Lock()
		err = score(w.scratch, 0, numPairs)
		w.mu.Unlock()
	}
	if err != nil {
		return model.Prediction{}, err
	}

	tally := make([]float64, n)
	i, j := 0, 1
	for p := 0; p < numPairs; p++ {
		s := pairScores[p]
		if w.tournament == MarginSum {
			tally[i] += s
			tally[j] -= s
		} else {
			if s >= 0 {
				tally[i]++
			} else {
				tally[j]++
			}
		}

		j++
		if j == n {
			i++
			j = i + 1
		}
	}

	best := 0
	for k := 1; k < n; k++ {
		if tally[k] > tally[best] {
			best = k
		}
	}

	scores := make([]model.LabelScore, n)
	for k, c := range cands {
		scores[k] = model.LabelScore{Label: c, Score: tally[k]}
	}
	return model.Prediction{Label: cands[best], Scores: scores}, nil
}

// predictSingleElimination walks the bracket bottom-up. Candidates arrive in
// ascending order and winners keep that order, so every match pairs a
// smaller id against a larger one exactly as training did.
func (w *WAP) predictSingleElimination(ex *costs.Example, cands []int) (model.Prediction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	example := w.state.Snapshot().Examples
	wins := make(map[int]float64, len(cands))
	round := append([]int(nil), cands...)

	var inst model.Instance
	defer inst.Clear()
	for len(round) > 1 {
		next := make([]int, 0, (len(round)+1)/2)
		for k := 0; k+1 < len(round); k += 2 {
			i, j := round[k], round[k+1]
			x, offset := w.pairFeatures(w.scratch, ex, i, j)
			inst.Set(x, 0, 1, offset)
			s, err := w.base.Predict(&inst)
			if err != nil {
				return model.Prediction{}, errors.Wrapf(err, "%s: pair (%d, %d)", opPredict, i, j)
			}
			if cerr := errors.CheckScalar(opPredict, s, example); cerr != nil {
				return model.Prediction{}, cerr
			}

			winner := j
			if s >= 0 {
				winner = i
			}
			wins[winner]++
			next = append(next, winner)
		}
		if len(round)%2 == 1 {
			// The trailing odd entrant takes a bye into the next round.
			next = append(next, round[len(round)-1])
		}
		round = next
	}

	scores := make([]model.LabelScore, len(cands))
	for k, c := range cands {
		scores[k] = model.LabelScore{Label: c, Score: wins[c]}
	}
	return model.Prediction{Label: round[0], Scores: scores}, nil
}

// pairAt maps a flat pair index to its (i, j) candidate indexes, i < j,
// under ascending (i, j) enumeration.
func pairAt(n, p int) (int, int) {
	i := 0
	row := n - 1
	for p >= row {
		p -= row
		i++
		row--
	}
	return i, i + 1 + p
}
