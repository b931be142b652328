package metrics

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// learningCurve builds the progressive-validation plot: average cost and
// average regret against the number of examples learned.
func learningCurve(history []ProgressPoint) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "metrics: learning curve")
	}

	costPts := make(plotter.XYs, len(history))
	regretPts := make(plotter.XYs, len(history))
	vals := make([]float64, 0, 2*len(history))
	for i, pt := range history {
		costPts[i].X = float64(pt.Examples)
		costPts[i].Y = pt.AverageCost
		regretPts[i].X = float64(pt.Examples)
		regretPts[i].Y = pt.AverageRegret
		vals = append(vals, pt.AverageCost, pt.AverageRegret)
	}
	// A NaN or Inf point would render as a silently broken axis range.
	if err := errors.CheckValues("metrics.PlotLearningCurve", vals, 0); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Progressive Validation"
	p.X.Label.Text = "Examples"
	p.Y.Label.Text = "Average Cost"
	p.Add(plotter.NewGrid())

	costLine, err := plotter.NewLine(costPts)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: cost line")
	}
	costLine.Color = color.RGBA{B: 255, A: 255}
	costLine.LineStyle.Width = vg.Points(1.5)
	p.Add(costLine)
	p.Legend.Add("average cost", costLine)

	regretLine, err := plotter.NewLine(regretPts)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: regret line")
	}
	regretLine.Color = color.RGBA{R: 255, A: 255}
	regretLine.LineStyle.Width = vg.Points(1.5)
	regretLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(regretLine)
	p.Legend.Add("average regret", regretLine)

	p.Legend.Top = true
	return p, nil
}

// PlotLearningCurve renders the progressive-validation trace as a PNG and
// writes it to w.
func PlotLearningCurve(history []ProgressPoint, w io.Writer) error {
	p, err := learningCurve(history)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "metrics: render learning curve")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "metrics: write learning curve")
	}
	return nil
}

// SaveLearningCurve renders the progressive-validation trace to a file. The
// image format follows the file extension, as in plot.Plot.Save.
func SaveLearningCurve(history []ProgressPoint, path string) error {
	p, err := learningCurve(history)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "metrics: save learning curve")
	}
	return nil
}
