package plot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/pkg/errors"
)

var olive = color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}

// NewPlot builds the gonum plot for fig.
func NewPlot(fig *linear.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(fig.Points))
	for i, pt := range fig.Points {
		pts[i].X = pt.Mileage
		pts[i].Y = pt.Price
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scatter plot")
	}
	scatter.GlyphStyle.Shape = draw.PlusGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add(PointsLabel, scatter)

	line, err := plotter.NewLine(plotter.XYs{
		{X: fig.Line[0].Mileage, Y: fig.Line[0].Price},
		{X: fig.Line[1].Mileage, Y: fig.Line[1].Price},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create regression line")
	}
	line.Width = vg.Points(2)
	line.Color = olive
	p.Add(line)
	p.Legend.Add(LineLabel, line)

	if fig.Query != nil {
		query, err := plotter.NewScatter(plotter.XYs{{X: fig.Query.Mileage, Y: fig.Query.Price}})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create query point")
		}
		query.GlyphStyle.Shape = draw.PyramidGlyph{}
		query.GlyphStyle.Radius = vg.Points(4)
		query.GlyphStyle.Color = olive
		p.Add(query)
		p.Legend.Add(QueryLabel, query)
	}

	p.Legend.Top = true
	return p, nil
}

// SaveImage writes fig as an 8x6 inch image.
func SaveImage(fig *linear.Figure, path string) error {
	p, err := NewPlot(fig)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot %s", path)
	}
	return nil
}
