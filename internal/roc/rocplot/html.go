package rocplot

import (
	"fmt"
	"io"

	"github.com/banshee-data/rocauc/internal/roc"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// AssetsHost is where the rendered page loads the echarts script from.
var AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// RenderHTML writes a standalone HTML page with one line series per curve
// and a dashed chance diagonal.
func RenderHTML(w io.Writer, title string, curves map[string]roc.Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "720px", Height: "720px", AssetsHost: AssetsHost}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("curves=%d", len(curves))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: 1, Name: "FPR", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: 1, Name: "TPR", NameLocation: "middle", NameGap: 30}),
	)

	line.AddSeries("chance", []opts.LineData{{Value: []interface{}{0.0, 0.0}}, {Value: []interface{}{1.0, 1.0}}},
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Color: "#888888"}),
	)

	names := sortedNames(curves)
	colors := seriesColors(len(names))
	for i, name := range names {
		c := curves[name]
		data := make([]opts.LineData, 0, len(c.Points))
		for _, p := range c.Points {
			data = append(data, opts.LineData{Value: []interface{}{p.Fpr, p.Tpr}})
		}
		line.AddSeries(legendLabel(name, c), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: hexColor(colors[i]), Width: 2}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render roc html: %w", err)
	}
	return nil
}
