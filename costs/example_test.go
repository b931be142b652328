package costs

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCandidatesSortedAndCopied(t *testing.T) {
	ex := &Example{
		Pairs: []LabelCost{
			{Label: 3, Cost: 1.0},
			{Label: 1, Cost: 2.0},
			{Label: 2, Cost: 0.5},
		},
	}

	got := ex.Candidates()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates() = %v, want %v", got, want)
		}
	}

	// The example's own pair order must be untouched.
	if ex.Pairs[0].Label != 3 || ex.Pairs[1].Label != 1 || ex.Pairs[2].Label != 2 {
		t.Errorf("Candidates() reordered the example's pairs: %v", ex.Pairs)
	}
}

func TestSortedPairs(t *testing.T) {
	ex := &Example{
		Pairs: []LabelCost{
			{Label: 5, Cost: 0.1},
			{Label: 2, Cost: 0.4},
			{Label: 9, Cost: 0.2},
		},
	}

	got := ex.SortedPairs()
	if got[0].Label != 2 || got[1].Label != 5 || got[2].Label != 9 {
		t.Errorf("SortedPairs() order = %d, %d, %d; want 2, 5, 9", got[0].Label, got[1].Label, got[2].Label)
	}
	if ex.Pairs[0].Label != 5 {
		t.Errorf("SortedPairs() mutated the example's pairs: %v", ex.Pairs)
	}
}

func TestLDFLabelsSorted(t *testing.T) {
	ex := &Example{
		LabelFeatures: map[int]*mat.VecDense{
			7: mat.NewVecDense(2, []float64{1, 0}),
			2: mat.NewVecDense(2, []float64{0, 1}),
			4: mat.NewVecDense(2, []float64{1, 1}),
		},
	}

	got := ex.LDFLabels()
	want := []int{2, 4, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LDFLabels() = %v, want %v", got, want)
		}
	}
}

func TestCostOf(t *testing.T) {
	ex := &Example{Pairs: []LabelCost{{Label: 1, Cost: 0.25}, {Label: 4, Cost: 2.0}}}

	if c, ok := ex.CostOf(4); !ok || c != 2.0 {
		t.Errorf("CostOf(4) = %v, %v; want 2.0, true", c, ok)
	}
	if _, ok := ex.CostOf(3); ok {
		t.Errorf("CostOf(3) = _, true; want false for an absent label")
	}
}

func TestMinCost(t *testing.T) {
	tests := []struct {
		name      string
		pairs     []LabelCost
		wantLabel int
		wantCost  float64
		wantOK    bool
	}{
		{
			name:      "unique minimum",
			pairs:     []LabelCost{{Label: 1, Cost: 3.0}, {Label: 2, Cost: 0.5}, {Label: 3, Cost: 1.0}},
			wantLabel: 2,
			wantCost:  0.5,
			wantOK:    true,
		},
		{
			name:      "tie goes to the smaller label id",
			pairs:     []LabelCost{{Label: 6, Cost: 1.0}, {Label: 3, Cost: 1.0}, {Label: 9, Cost: 2.0}},
			wantLabel: 3,
			wantCost:  1.0,
			wantOK:    true,
		},
		{
			name:   "no pairs",
			pairs:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, cost, ok := (&Example{Pairs: tt.pairs}).MinCost()
			if ok != tt.wantOK {
				t.Fatalf("MinCost() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if label != tt.wantLabel || cost != tt.wantCost {
				t.Errorf("MinCost() = %d, %v; want %d, %v", label, cost, tt.wantLabel, tt.wantCost)
			}
		})
	}
}

func TestImportanceWeight(t *testing.T) {
	if got := (&Example{}).ImportanceWeight(); got != 1 {
		t.Errorf("zero-value Weight maps to %v, want 1", got)
	}
	if got := (&Example{Weight: 2.5}).ImportanceWeight(); got != 2.5 {
		t.Errorf("ImportanceWeight() = %v, want 2.5", got)
	}
}

func TestFeatureModeString(t *testing.T) {
	if SharedFeatures.String() != "shared" {
		t.Errorf("SharedFeatures.String() = %q", SharedFeatures.String())
	}
	if LabelDependentFeatures.String() != "label_dependent" {
		t.Errorf("LabelDependentFeatures.String() = %q", LabelDependentFeatures.String())
	}
	if FeatureMode(99).String() != "unknown" {
		t.Errorf("FeatureMode(99).String() = %q", FeatureMode(99).String())
	}
}

func TestNewExampleConstructors(t *testing.T) {
	shared := mat.NewVecDense(2, []float64{1, 2})
	ex := NewExample([]LabelCost{{Label: 1, Cost: 0}}, shared)
	if ex.Weight != 1 || ex.Shared != shared {
		t.Errorf("NewExample() = %+v", ex)
	}

	lf := map[int]*mat.VecDense{1: mat.NewVecDense(1, []float64{3})}
	lex := NewLDFExample([]LabelCost{{Label: 1, Cost: 0}}, lf)
	if lex.Weight != 1 || lex.LabelFeatures[1] != lf[1] {
		t.Errorf("NewLDFExample() = %+v", lex)
	}
}
