package metrics

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

func sampleHistory() []ProgressPoint {
	return []ProgressPoint{
		{Examples: 1, AverageCost: 2.0, AverageRegret: 1.5, ErrorRate: 1.0},
		{Examples: 2, AverageCost: 1.5, AverageRegret: 1.0, ErrorRate: 0.5},
		{Examples: 3, AverageCost: 1.0, AverageRegret: 0.5, ErrorRate: 0.25},
	}
}

func TestPlotLearningCurveEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	err := PlotLearningCurve(nil, &buf)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("PlotLearningCurve(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestPlotLearningCurveRejectsNonFinitePoints(t *testing.T) {
	history := sampleHistory()
	history[1].AverageRegret = math.NaN()

	var buf bytes.Buffer
	err := PlotLearningCurve(history, &buf)

	var unstable *errors.NumericalInstabilityError
	if !errors.As(err, &unstable) {
		t.Fatalf("PlotLearningCurve(NaN point) error = %v, want NumericalInstabilityError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("PlotLearningCurve(NaN point) wrote %d bytes, want none", buf.Len())
	}
}

func TestPlotLearningCurveWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotLearningCurve(sampleHistory(), &buf); err != nil {
		t.Fatalf("PlotLearningCurve() error = %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if buf.Len() <= len(pngMagic) {
		t.Fatalf("PlotLearningCurve() wrote %d bytes", buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("PlotLearningCurve() output does not start with the PNG signature")
	}
}

func TestSaveLearningCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	if err := SaveLearningCurve(sampleHistory(), path); err != nil {
		t.Fatalf("SaveLearningCurve() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("SaveLearningCurve() wrote an empty file")
	}
}
