package model

import (
	"gonum.org/v1/gonum/floats"

	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
)

// MinRows is the smallest dataset gradient descent can fit a line to.
const MinRows = 2

// Dataset holds the training rows as parallel sequences.
type Dataset struct {
	Mileage []float64
	Price   []float64
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Mileage)
}

// Validate checks that both sequences have the same length and that there
// are at least MinRows rows.
func (d Dataset) Validate() error {
	if len(d.Mileage) != len(d.Price) {
		return scigoErrors.NewDimensionError("Dataset.Validate", len(d.Mileage), len(d.Price), 0)
	}
	if d.Len() < MinRows {
		return scigoErrors.NewInsufficientDataError("Dataset.Validate", d.Len(), MinRows)
	}
	return nil
}

// MileageExtrema returns the extrema of the mileage column.
func (d Dataset) MileageExtrema() Extrema {
	return ExtremaOf(d.Mileage)
}

// PriceExtrema returns the extrema of the price column.
func (d Dataset) PriceExtrema() Extrema {
	return ExtremaOf(d.Price)
}

// Extrema is the (min, max) pair of a raw sequence.
type Extrema struct {
	Min float64
	Max float64
}

// ExtremaOf scans values for its minimum and maximum.
// It panics on an empty slice, like floats.Min.
func ExtremaOf(values []float64) Extrema {
	return Extrema{Min: floats.Min(values), Max: floats.Max(values)}
}

// Range returns Max - Min.
func (e Extrema) Range() float64 {
	return e.Max - e.Min
}

// Degenerate reports whether every value of the sequence was identical.
func (e Extrema) Degenerate() bool {
	return e.Min == e.Max
}

// Coefficients are the intercept and slope of y = T0 + T1*x in normalized space.
type Coefficients struct {
	T0 float64 `json:"t0"`
	T1 float64 `json:"t1"`
}

// IsZero reports whether c is the untrained default (0, 0).
func (c Coefficients) IsZero() bool {
	return c.T0 == 0 && c.T1 == 0
}

// At evaluates the line at a normalized x.
func (c Coefficients) At(xNorm float64) float64 {
	return c.T0 + c.T1*xNorm
}
