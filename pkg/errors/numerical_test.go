package errors

import (
	"math"
	"testing"
)

func TestCheckScalar(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "finite value", value: 1.5, wantErr: false},
		{name: "zero", value: 0, wantErr: false},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "positive infinity", value: math.Inf(1), wantErr: true},
		{name: "negative infinity", value: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckScalar("csoaa.Predict", tt.value, 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckScalar(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				var instability *NumericalInstabilityError
				if !As(err, &instability) {
					t.Fatalf("Expected NumericalInstabilityError, got %T", err)
				}
				if instability.Example != 3 {
					t.Errorf("Example = %d, want 3", instability.Example)
				}
			}
		})
	}
}

func TestCheckValues(t *testing.T) {
	if err := CheckValues("wap.Predict", []float64{1, 2, 3}, 0); err != nil {
		t.Fatalf("CheckValues(finite) = %v, want nil", err)
	}
	if err := CheckValues("wap.Predict", nil, 0); err != nil {
		t.Fatalf("CheckValues(nil) = %v, want nil", err)
	}

	err := CheckValues("wap.Predict", []float64{1, math.NaN(), math.Inf(1)}, 5)
	var instability *NumericalInstabilityError
	if !As(err, &instability) {
		t.Fatalf("Expected NumericalInstabilityError, got %T", err)
	}
	if len(instability.Values) != 2 {
		t.Errorf("Values = %v, want the two offending values", instability.Values)
	}
}

func TestCheckValuesCapsReportedValues(t *testing.T) {
	values := make([]float64, 25)
	for i := range values {
		values[i] = math.NaN()
	}

	err := CheckValues("wap.Predict", values, 0)
	var instability *NumericalInstabilityError
	if !As(err, &instability) {
		t.Fatalf("Expected NumericalInstabilityError, got %T", err)
	}
	if len(instability.Values) != 10 {
		t.Errorf("reported %d values, want the cap of 10", len(instability.Values))
	}
}

func TestIsFiniteNonNegative(t *testing.T) {
	tests := []struct {
		value float64
		want  bool
	}{
		{value: 0, want: true},
		{value: 2.5, want: true},
		{value: -0.1, want: false},
		{value: math.NaN(), want: false},
		{value: math.Inf(1), want: false},
		{value: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		if got := IsFiniteNonNegative(tt.value); got != tt.want {
			t.Errorf("IsFiniteNonNegative(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
