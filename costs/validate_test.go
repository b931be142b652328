package costs

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

func validShared() *Example {
	return NewExample(
		[]LabelCost{{Label: 1, Cost: 0.0}, {Label: 2, Cost: 1.5}},
		mat.NewVecDense(3, []float64{1, 2, 3}),
	)
}

func validLDF() *Example {
	return NewLDFExample(
		[]LabelCost{{Label: 1, Cost: 0.0}, {Label: 2, Cost: 1.5}},
		map[int]*mat.VecDense{
			1: mat.NewVecDense(2, []float64{1, 0}),
			2: mat.NewVecDense(2, []float64{0, 1}),
		},
	)
}

func TestValidateSharedFeatures(t *testing.T) {
	tests := []struct {
		name       string
		example    *Example
		wantReason string
	}{
		{
			name:    "valid example",
			example: validShared(),
		},
		{
			name: "label id below one",
			example: &Example{
				Pairs:  []LabelCost{{Label: 0, Cost: 1.0}},
				Shared: mat.NewVecDense(1, []float64{1}),
			},
			wantReason: "label id must be at least 1",
		},
		{
			name: "duplicate label",
			example: &Example{
				Pairs:  []LabelCost{{Label: 2, Cost: 1.0}, {Label: 2, Cost: 0.5}},
				Shared: mat.NewVecDense(1, []float64{1}),
			},
			wantReason: "duplicate label",
		},
		{
			name: "NaN cost",
			example: &Example{
				Pairs:  []LabelCost{{Label: 1, Cost: math.NaN()}},
				Shared: mat.NewVecDense(1, []float64{1}),
			},
			wantReason: "non-finite cost",
		},
		{
			name: "infinite cost",
			example: &Example{
				Pairs:  []LabelCost{{Label: 1, Cost: math.Inf(1)}},
				Shared: mat.NewVecDense(1, []float64{1}),
			},
			wantReason: "non-finite cost",
		},
		{
			name: "negative cost",
			example: &Example{
				Pairs:  []LabelCost{{Label: 1, Cost: -0.5}},
				Shared: mat.NewVecDense(1, []float64{1}),
			},
			wantReason: "negative cost",
		},
		{
			name: "missing shared feature vector",
			example: &Example{
				Pairs: []LabelCost{{Label: 1, Cost: 1.0}},
			},
			wantReason: "missing shared feature vector",
		},
		{
			name: "negative importance weight",
			example: &Example{
				Pairs:  []LabelCost{{Label: 1, Cost: 1.0}},
				Shared: mat.NewVecDense(1, []float64{1}),
				Weight: -2,
			},
			wantReason: "importance weight must be finite and non-negative",
		},
		{
			name:       "nil example",
			example:    nil,
			wantReason: "nil example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.example.Validate(SharedFeatures)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var malformed *errors.MalformedExampleError
			if !errors.As(err, &malformed) {
				t.Fatalf("Validate() = %v, want MalformedExampleError", err)
			}
			if malformed.Reason != tt.wantReason {
				t.Errorf("Validate() reason = %q, want %q", malformed.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateLabelDependentFeatures(t *testing.T) {
	t.Run("valid example", func(t *testing.T) {
		if err := validLDF().Validate(LabelDependentFeatures); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing feature entry", func(t *testing.T) {
		ex := validLDF()
		delete(ex.LabelFeatures, 2)

		err := ex.Validate(LabelDependentFeatures)
		var mapping *errors.InvalidLDFMappingError
		if !errors.As(err, &mapping) {
			t.Fatalf("Validate() = %v, want InvalidLDFMappingError", err)
		}
		if mapping.Label != 2 {
			t.Errorf("InvalidLDFMappingError.Label = %d, want 2", mapping.Label)
		}
	})

	t.Run("nil feature vector", func(t *testing.T) {
		ex := validLDF()
		ex.LabelFeatures[2] = nil

		err := ex.Validate(LabelDependentFeatures)
		var malformed *errors.MalformedExampleError
		if !errors.As(err, &malformed) {
			t.Fatalf("Validate() = %v, want MalformedExampleError", err)
		}
		if malformed.Reason != "nil label-dependent feature vector" {
			t.Errorf("Validate() reason = %q", malformed.Reason)
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		ex := validLDF()
		ex.LabelFeatures[2] = mat.NewVecDense(3, []float64{0, 1, 2})

		err := ex.Validate(LabelDependentFeatures)
		var malformed *errors.MalformedExampleError
		if !errors.As(err, &malformed) {
			t.Fatalf("Validate() = %v, want MalformedExampleError", err)
		}
		if malformed.Reason != "label-dependent feature dimension mismatch" {
			t.Errorf("Validate() reason = %q", malformed.Reason)
		}
	})

	t.Run("extra mapping entries are allowed", func(t *testing.T) {
		// The mapping may carry labels beyond the pairs; those are the
		// out-of-band candidates for pairless prediction.
		ex := validLDF()
		ex.LabelFeatures[9] = mat.NewVecDense(2, []float64{1, 1})
		if err := ex.Validate(LabelDependentFeatures); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})
}

func TestValidateForLearningRequiresPairs(t *testing.T) {
	ex := &Example{Shared: mat.NewVecDense(1, []float64{1})}

	if err := ex.Validate(SharedFeatures); err != nil {
		t.Fatalf("Validate() without pairs = %v, want nil for predict-side checks", err)
	}

	err := ex.ValidateForLearning(SharedFeatures)
	var malformed *errors.MalformedExampleError
	if !errors.As(err, &malformed) {
		t.Fatalf("ValidateForLearning() = %v, want MalformedExampleError", err)
	}
	if malformed.Reason != "no label-cost pairs" {
		t.Errorf("ValidateForLearning() reason = %q, want %q", malformed.Reason, "no label-cost pairs")
	}
}

func TestValidateIsReadOnly(t *testing.T) {
	ex := &Example{
		Pairs: []LabelCost{
			{Label: 3, Cost: 2.0},
			{Label: 1, Cost: 0.0},
		},
		Shared: mat.NewVecDense(2, []float64{4, 5}),
		Weight: 2,
	}

	before := make([]LabelCost, len(ex.Pairs))
	copy(before, ex.Pairs)
	featBefore := []float64{ex.Shared.AtVec(0), ex.Shared.AtVec(1)}

	for i := 0; i < 2; i++ {
		if err := ex.Validate(SharedFeatures); err != nil {
			t.Fatalf("Validate() pass %d = %v", i, err)
		}
	}

	for i := range before {
		if ex.Pairs[i] != before[i] {
			t.Errorf("Validate() mutated pairs: %v, want %v", ex.Pairs, before)
		}
	}
	if ex.Shared.AtVec(0) != featBefore[0] || ex.Shared.AtVec(1) != featBefore[1] {
		t.Errorf("Validate() mutated the feature vector")
	}
	if ex.Weight != 2 {
		t.Errorf("Validate() mutated the weight: %v", ex.Weight)
	}
}
