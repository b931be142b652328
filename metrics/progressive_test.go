package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// adaptiveLearner predicts label 2 until it has learned at least once, then
// label 1. The switch makes the test-then-train ordering observable: only a
// prediction taken before the first update can return label 2.
type adaptiveLearner struct {
	learned  int
	learnErr error
}

func (a *adaptiveLearner) Learn(*costs.Example) error {
	if a.learnErr != nil {
		return a.learnErr
	}
	a.learned++
	return nil
}

func (a *adaptiveLearner) Predict(*costs.Example) (int, error) {
	if a.learned == 0 {
		return 2, nil
	}
	return 1, nil
}

func (a *adaptiveLearner) PredictScores(ex *costs.Example) (model.Prediction, error) {
	label, err := a.Predict(ex)
	if err != nil {
		return model.Prediction{}, err
	}
	return model.Prediction{Label: label, Scores: []model.LabelScore{{Label: label}}}, nil
}

func twoLabelExample() *costs.Example {
	return ex(
		costs.LabelCost{Label: 1, Cost: 0.0},
		costs.LabelCost{Label: 2, Cost: 1.0},
	)
}

func TestProgressiveTestThenTrain(t *testing.T) {
	inner := &adaptiveLearner{}
	p, err := NewProgressive(inner)
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}

	// First pass: the unfitted learner predicts label 2 (cost 1.0) and only
	// then trains. Second pass: the now-fitted learner predicts label 1.
	for i := 0; i < 2; i++ {
		if err := p.Learn(twoLabelExample()); err != nil {
			t.Fatalf("Learn() error = %v", err)
		}
	}

	got := p.Summary()
	if got.Examples != 2 {
		t.Fatalf("Summary().Examples = %d, want 2", got.Examples)
	}
	if math.Abs(got.AverageCost-0.5) > 1e-12 {
		t.Errorf("Summary().AverageCost = %v, want 0.5", got.AverageCost)
	}
	if math.Abs(got.AverageRegret-0.5) > 1e-12 {
		t.Errorf("Summary().AverageRegret = %v, want 0.5", got.AverageRegret)
	}
	if math.Abs(got.ErrorRate-0.5) > 1e-12 {
		t.Errorf("Summary().ErrorRate = %v, want 0.5", got.ErrorRate)
	}
	if inner.learned != 2 {
		t.Errorf("inner learner saw %d examples, want 2", inner.learned)
	}
}

func TestProgressiveHistoryStride(t *testing.T) {
	inner := &adaptiveLearner{}
	p, err := NewProgressive(inner, WithHistoryEvery(2))
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := p.Learn(twoLabelExample()); err != nil {
			t.Fatalf("Learn() error = %v", err)
		}
	}

	history := p.History()
	if len(history) != 2 {
		t.Fatalf("History() has %d points, want 2", len(history))
	}
	if history[0].Examples != 2 || history[1].Examples != 4 {
		t.Errorf("History() examples = %d, %d; want 2, 4", history[0].Examples, history[1].Examples)
	}
}

func TestProgressiveDefaultHistoryPerExample(t *testing.T) {
	p, err := NewProgressive(&adaptiveLearner{})
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := p.Learn(twoLabelExample()); err != nil {
			t.Fatalf("Learn() error = %v", err)
		}
	}
	if got := len(p.History()); got != 3 {
		t.Errorf("History() has %d points, want 3", got)
	}
}

func TestProgressiveLearnFailureNotCounted(t *testing.T) {
	inner := &adaptiveLearner{learnErr: errors.New("boom")}
	p, err := NewProgressive(inner)
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}

	if err := p.Learn(twoLabelExample()); err == nil {
		t.Fatal("Learn() = nil, want inner learner's error")
	}
	if got := p.Summary(); got.Examples != 0 {
		t.Errorf("Summary().Examples = %d after failed Learn, want 0", got.Examples)
	}
	if len(p.History()) != 0 {
		t.Errorf("History() not empty after failed Learn")
	}
}

func TestProgressivePredictLeavesTraceUntouched(t *testing.T) {
	p, err := NewProgressive(&adaptiveLearner{})
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}

	if _, err := p.Predict(twoLabelExample()); err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if _, err := p.PredictScores(twoLabelExample()); err != nil {
		t.Fatalf("PredictScores() error = %v", err)
	}
	if got := p.Summary(); got.Examples != 0 {
		t.Errorf("Summary().Examples = %d after predict-only use, want 0", got.Examples)
	}
}

func TestProgressiveReset(t *testing.T) {
	p, err := NewProgressive(&adaptiveLearner{})
	if err != nil {
		t.Fatalf("NewProgressive() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := p.Learn(twoLabelExample()); err != nil {
			t.Fatalf("Learn() error = %v", err)
		}
	}

	p.Reset()
	if got := p.Summary(); got.Examples != 0 || got.AverageCost != 0 {
		t.Errorf("Summary() after Reset = %+v, want zero point", got)
	}
	if len(p.History()) != 0 {
		t.Errorf("History() not empty after Reset")
	}
}

func TestProgressiveNilLearner(t *testing.T) {
	if _, err := NewProgressive(nil); !errors.Is(err, errors.ErrNilBaseLearner) {
		t.Errorf("NewProgressive(nil) error = %v, want ErrNilBaseLearner", err)
	}
}
