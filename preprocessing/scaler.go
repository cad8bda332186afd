// Package preprocessing implements min-max normalization of raw mileage and
// price sequences.
//
// Gradient descent behaves much better on values in [0, 1] than on raw
// mileages in the hundreds of thousands, so both axes are rescaled with
//
//	normalized = (raw - min) / (max - min)
//
// before training, and predictions are mapped back with Denormalize.
//
// Example usage:
//
//	xNorm, err := preprocessing.Normalize(km)
//	if err != nil {
//		return err // DegenerateRangeError when every mileage is equal
//	}
//	price := preprocessing.Denormalize(yNorm, minPrice, maxPrice)
package preprocessing

import (
	"fmt"

	"github.com/ezoic/pricefit/core/model"
	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
)

// Normalize maps raw onto [0, 1] with min-max scaling.
//
// The minimum maps to exactly 0 and the maximum to exactly 1; order is
// preserved. A sequence whose values are all identical cannot be normalized
// and yields a DegenerateRangeError.
//
// Errors:
//   - ErrEmptyData: if raw is empty
//   - ErrDegenerateRange: if min(raw) == max(raw)
func Normalize(raw []float64) ([]float64, error) {
	if len(raw) == 0 {
		return nil, scigoErrors.NewModelError("Normalize", "empty data", scigoErrors.ErrEmptyData)
	}
	return NormalizeWith(raw, model.ExtremaOf(raw))
}

// NormalizeWith normalizes raw against precomputed extrema.
func NormalizeWith(raw []float64, e model.Extrema) ([]float64, error) {
	if e.Degenerate() {
		return nil, scigoErrors.NewDegenerateRangeError("Normalize", "", e.Min)
	}
	out := make([]float64, len(raw))
	span := e.Range()
	for i, v := range raw {
		out[i] = (v - e.Min) / span
	}
	return out, nil
}

// NormalizeValue normalizes a single value. Values outside [e.Min, e.Max]
// are not clamped and land outside [0, 1].
func NormalizeValue(v float64, e model.Extrema) (float64, error) {
	if e.Degenerate() {
		return 0, scigoErrors.NewDegenerateRangeError("NormalizeValue", "", e.Min)
	}
	return (v - e.Min) / e.Range(), nil
}

// Denormalize maps a normalized value back to the raw scale.
//
// The affine formula is applied unconditionally, including for a
// normalized value of exactly 0, which maps back to mini.
func Denormalize(vNorm, mini, maxi float64) float64 {
	return vNorm*(maxi-mini) + mini
}

// MinMaxScaler remembers the extrema of the sequence it was fitted on so the
// same mapping can be applied to new values and inverted later.
type MinMaxScaler struct {
	state *model.StateManager

	// Name labels the axis in error messages ("mileage", "price").
	Name string

	extrema model.Extrema
}

// NewMinMaxScaler creates an unfitted scaler for the named axis.
func NewMinMaxScaler(name string) *MinMaxScaler {
	return &MinMaxScaler{
		state: model.NewStateManager(),
		Name:  name,
	}
}

// Fit records the extrema of raw.
//
// Errors:
//   - ErrEmptyData: if raw is empty
//   - ErrDegenerateRange: if every value of raw is identical
func (m *MinMaxScaler) Fit(raw []float64) (err error) {
	defer scigoErrors.Recover(&err, "MinMaxScaler.Fit")
	if len(raw) == 0 {
		return scigoErrors.NewModelError("MinMaxScaler.Fit", "empty data", scigoErrors.ErrEmptyData)
	}
	e := model.ExtremaOf(raw)
	if e.Degenerate() {
		return scigoErrors.NewDegenerateRangeError("MinMaxScaler.Fit", m.Name, e.Min)
	}
	m.extrema = e
	m.state.SetFitted()
	return nil
}

// Transform normalizes raw with the fitted extrema.
func (m *MinMaxScaler) Transform(raw []float64) ([]float64, error) {
	if !m.IsFitted() {
		return nil, scigoErrors.NewNotFittedError("MinMaxScaler", "Transform")
	}
	return NormalizeWith(raw, m.extrema)
}

// FitTransform fits the scaler on raw and returns raw normalized.
func (m *MinMaxScaler) FitTransform(raw []float64) ([]float64, error) {
	if err := m.Fit(raw); err != nil {
		return nil, err
	}
	return m.Transform(raw)
}

// InverseTransform maps normalized values back to the raw scale.
func (m *MinMaxScaler) InverseTransform(norm []float64) ([]float64, error) {
	if !m.IsFitted() {
		return nil, scigoErrors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}
	out := make([]float64, len(norm))
	for i, v := range norm {
		out[i] = Denormalize(v, m.extrema.Min, m.extrema.Max)
	}
	return out, nil
}

// Extrema returns the fitted extrema.
func (m *MinMaxScaler) Extrema() model.Extrema {
	return m.extrema
}

// IsFitted reports whether Fit succeeded.
func (m *MinMaxScaler) IsFitted() bool {
	return m.state.IsFitted()
}

// String returns the scaler's string representation
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return fmt.Sprintf("MinMaxScaler(name=%q)", m.Name)
	}
	return fmt.Sprintf("MinMaxScaler(name=%q, min=%g, max=%g)", m.Name, m.extrema.Min, m.extrema.Max)
}
