package plot

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/pkg/errors"
)

// NewChart builds the echarts scatter for fig with the fitted line overlaid.
func NewChart(fig *linear.Figure) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: YLabel, Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{}),
	)

	points := make([]opts.ScatterData, 0, len(fig.Points))
	for _, pt := range fig.Points {
		points = append(points, opts.ScatterData{Value: []float64{pt.Mileage, pt.Price}, Symbol: "cross"})
	}
	scatter.AddSeries(PointsLabel, points)

	if fig.Query != nil {
		scatter.AddSeries(QueryLabel, []opts.ScatterData{{
			Value:      []float64{fig.Query.Mileage, fig.Query.Price},
			Symbol:     "diamond",
			SymbolSize: 14,
		}})
	}

	line := charts.NewLine()
	line.AddSeries(LineLabel, []opts.LineData{
		{Value: []float64{fig.Line[0].Mileage, fig.Line[0].Price}},
		{Value: []float64{fig.Line[1].Mileage, fig.Line[1].Price}},
	})
	scatter.Overlap(line)

	return scatter
}

// RenderHTML writes the chart page for fig to w.
func RenderHTML(fig *linear.Figure, w io.Writer) error {
	return NewChart(fig).Render(w)
}

// SaveHTML writes the chart page for fig to path.
func SaveHTML(fig *linear.Figure, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := RenderHTML(fig, f); err != nil {
		return errors.Wrapf(err, "failed to render chart %s", path)
	}
	return nil
}
