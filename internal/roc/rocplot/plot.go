// Package rocplot renders computed ROC curves for inspection, as PNG via
// gonum/plot or as a standalone HTML page via go-echarts.
package rocplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/banshee-data/rocauc/internal/monitoring"
	"github.com/banshee-data/rocauc/internal/roc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default PNG dimensions.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// sortedNames returns the curve names in a stable order so series colours
// and legend order do not depend on map iteration.
func sortedNames(curves map[string]roc.Curve) []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// curveXYs converts curve points to plot coordinates (FPR on X, TPR on Y).
func curveXYs(c roc.Curve) plotter.XYs {
	xys := make(plotter.XYs, len(c.Points))
	for i, p := range c.Points {
		xys[i] = plotter.XY{X: p.Fpr, Y: p.Tpr}
	}
	return xys
}

func legendLabel(name string, c roc.Curve) string {
	return fmt.Sprintf("%s (%s, AUC=%.4f)", name, c.Mode, c.AUC)
}

// newPlot builds the ROC plot: one line per curve plus the chance diagonal.
func newPlot(title string, curves map[string]roc.Curve) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	chance := plotter.NewFunction(func(x float64) float64 { return x })
	chance.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	chance.Width = vg.Points(0.75)
	p.Add(chance)

	names := sortedNames(curves)
	colors := seriesColors(len(names))
	for i, name := range names {
		c := curves[name]
		if len(c.Points) == 0 {
			return nil, fmt.Errorf("curve %q has no points", name)
		}
		line, err := plotter.NewLine(curveXYs(c))
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", name, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(legendLabel(name, c), line)
	}

	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = 10
	return p, nil
}

// WritePNG renders curves as a PNG image to w.
func WritePNG(w io.Writer, title string, curves map[string]roc.Curve) error {
	p, err := newPlot(title, curves)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders curves to path, creating parent directories as needed.
func SavePNG(path, title string, curves map[string]roc.Curve) error {
	p, err := newPlot(title, curves)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("save roc plot: %w", err)
	}
	monitoring.Logf("rocplot: wrote %s (%d curves)", path, len(curves))
	return nil
}
