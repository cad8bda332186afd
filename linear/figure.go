package linear

import "github.com/ezoic/pricefit/core/model"

// Point is one (mileage, price) pair in raw units.
type Point struct {
	Mileage float64
	Price   float64
}

// Figure is the plain data a graph renderer needs: the training rows, the
// fitted line between the smallest and largest mileage, and optionally the
// queried car.
type Figure struct {
	Points []Point
	Line   [2]Point
	Query  *Point
}

// NewFigure builds the figure for a dataset and the predictor fitted on it.
// The line endpoints are the predictions at min(km) and max(km).
func NewFigure(ds model.Dataset, p *Predictor) (*Figure, error) {
	points := make([]Point, ds.Len())
	for i := range ds.Mileage {
		points[i] = Point{Mileage: ds.Mileage[i], Price: ds.Price[i]}
	}

	e := p.MileageExtrema()
	lo, err := p.Predict(e.Min)
	if err != nil {
		return nil, err
	}
	hi, err := p.Predict(e.Max)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Points: points,
		Line:   [2]Point{{Mileage: e.Min, Price: lo}, {Mileage: e.Max, Price: hi}},
	}, nil
}

// WithQuery returns a copy of f marking the queried car.
func (f *Figure) WithQuery(mileage, price float64) *Figure {
	out := *f
	out.Query = &Point{Mileage: mileage, Price: price}
	return &out
}
