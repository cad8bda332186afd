package linear

import (
	"github.com/ezoic/pricefit/core/model"
	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/preprocessing"
)

// Predictor turns raw mileages into raw prices using coefficients fitted in
// normalized space and the extrema of the dataset they were fitted on.
//
// The extrema are computed once when the Predictor is built, so predicting
// every row of a dataset costs one scan instead of one per row.
type Predictor struct {
	coef    model.Coefficients
	mileage model.Extrema
	price   model.Extrema
}

// NewPredictor creates a Predictor from explicit extrema.
//
// Errors:
//   - ErrDegenerateRange: if every mileage of the dataset was identical
func NewPredictor(coef model.Coefficients, mileage, price model.Extrema) (*Predictor, error) {
	if mileage.Degenerate() {
		return nil, scigoErrors.NewDegenerateRangeError("NewPredictor", "mileage", mileage.Min)
	}
	return &Predictor{coef: coef, mileage: mileage, price: price}, nil
}

// NewPredictorFromDataset computes the extrema of ds and creates a Predictor.
func NewPredictorFromDataset(coef model.Coefficients, ds model.Dataset) (*Predictor, error) {
	if ds.Len() == 0 || len(ds.Price) == 0 {
		return nil, scigoErrors.NewModelError("NewPredictorFromDataset", "empty dataset", scigoErrors.ErrEmptyData)
	}
	return NewPredictor(coef, ds.MileageExtrema(), ds.PriceExtrema())
}

// Predict estimates the raw price for a raw mileage.
//
// Mileages outside the training range are not clamped: the line is
// extrapolated past the [0, 1] normalized bounds.
func (p *Predictor) Predict(mileage float64) (float64, error) {
	xNorm, err := preprocessing.NormalizeValue(mileage, p.mileage)
	if err != nil {
		return 0, err
	}
	return preprocessing.Denormalize(p.coef.At(xNorm), p.price.Min, p.price.Max), nil
}

// PredictAll estimates a price for every mileage.
func (p *Predictor) PredictAll(mileages []float64) ([]float64, error) {
	out := make([]float64, len(mileages))
	for i, km := range mileages {
		v, err := p.Predict(km)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Coefficients returns the coefficients the Predictor applies.
func (p *Predictor) Coefficients() model.Coefficients {
	return p.coef
}

// MileageExtrema returns the mileage extrema the Predictor normalizes with.
func (p *Predictor) MileageExtrema() model.Extrema {
	return p.mileage
}

// Estimate predicts the raw price of one mileage. The extrema of km and price
// are derived on every call; use a Predictor when estimating many values.
func Estimate(coef model.Coefficients, mileage float64, km, price []float64) (float64, error) {
	p, err := NewPredictorFromDataset(coef, model.Dataset{Mileage: km, Price: price})
	if err != nil {
		return 0, err
	}
	return p.Predict(mileage)
}
