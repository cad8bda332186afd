package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/linear"
	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/preprocessing"
)

var linearCars = model.Dataset{
	Mileage: []float64{10000, 20000, 30000, 40000},
	Price:   []float64{20000, 15000, 10000, 5000},
}

func fit(t *testing.T, ds model.Dataset) model.Coefficients {
	t.Helper()
	x, err := preprocessing.Normalize(ds.Mileage)
	require.NoError(t, err)
	y, err := preprocessing.Normalize(ds.Price)
	require.NoError(t, err)
	coef, err := linear.NewGradientDescent().Fit(x, y)
	require.NoError(t, err)
	return coef
}

func TestEstimate_EndToEnd(t *testing.T) {
	coef := fit(t, linearCars)

	price, err := linear.Estimate(coef, 25000, linearCars.Mileage, linearCars.Price)
	require.NoError(t, err)
	assert.InDelta(t, 12500, price, 0.5)

	for i, km := range linearCars.Mileage {
		got, err := linear.Estimate(coef, km, linearCars.Mileage, linearCars.Price)
		require.NoError(t, err)
		assert.InDeltaf(t, linearCars.Price[i], got, 0.5, "row %d", i)
	}
}

func TestEstimate_TrainingPointsTwoRows(t *testing.T) {
	ds := model.Dataset{Mileage: []float64{0, 1}, Price: []float64{0, 1}}
	coef := fit(t, ds)

	for i, km := range ds.Mileage {
		got, err := linear.Estimate(coef, km, ds.Mileage, ds.Price)
		require.NoError(t, err)
		assert.InDelta(t, ds.Price[i], got, 1e-3)
	}
}

func TestPredictor_MatchesEstimate(t *testing.T) {
	coef := model.Coefficients{T0: 0.93, T1: -0.87}
	p, err := linear.NewPredictorFromDataset(coef, linearCars)
	require.NoError(t, err)

	for _, km := range []float64{0, 10000, 17500, 40000, 120000} {
		want, err := linear.Estimate(coef, km, linearCars.Mileage, linearCars.Price)
		require.NoError(t, err)
		got, err := p.Predict(km)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPredictor_Extrapolates(t *testing.T) {
	// y_norm = 1 - x_norm on the linear dataset
	p, err := linear.NewPredictor(
		model.Coefficients{T0: 1, T1: -1},
		model.Extrema{Min: 10000, Max: 40000},
		model.Extrema{Min: 5000, Max: 20000},
	)
	require.NoError(t, err)

	far, err := p.Predict(70000)
	require.NoError(t, err)
	assert.InDelta(t, -10000, far, 1e-9)

	zero, err := p.Predict(0)
	require.NoError(t, err)
	assert.InDelta(t, 25000, zero, 1e-9)
}

// A normalized prediction of exactly 0 is denormalized like any other value
// and yields the minimum price rather than 0.
func TestPredictor_ZeroNormalizedPrice(t *testing.T) {
	p, err := linear.NewPredictor(
		model.Coefficients{T0: 0, T1: 0},
		model.Extrema{Min: 0, Max: 100},
		model.Extrema{Min: 3000, Max: 9000},
	)
	require.NoError(t, err)

	got, err := p.Predict(50)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got)
}

func TestPredictor_DegenerateMileage(t *testing.T) {
	_, err := linear.Estimate(model.Coefficients{}, 10, []float64{5, 5, 5}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, scigoErrors.ErrDegenerateRange)

	_, err = linear.NewPredictor(model.Coefficients{}, model.Extrema{Min: 1, Max: 1}, model.Extrema{Min: 0, Max: 1})
	var rangeErr *scigoErrors.DegenerateRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "mileage", rangeErr.Axis)
}

func TestPredictor_EmptyDataset(t *testing.T) {
	_, err := linear.NewPredictorFromDataset(model.Coefficients{}, model.Dataset{})
	assert.ErrorIs(t, err, scigoErrors.ErrEmptyData)
}

func TestPredictor_PredictAll(t *testing.T) {
	p, err := linear.NewPredictorFromDataset(model.Coefficients{T0: 1, T1: -1}, linearCars)
	require.NoError(t, err)

	got, err := p.PredictAll(linearCars.Mileage)
	require.NoError(t, err)
	assert.InDeltaSlice(t, linearCars.Price, got, 1e-9)
}

func TestNewFigure(t *testing.T) {
	p, err := linear.NewPredictorFromDataset(model.Coefficients{T0: 1, T1: -1}, linearCars)
	require.NoError(t, err)

	fig, err := linear.NewFigure(linearCars, p)
	require.NoError(t, err)

	require.Len(t, fig.Points, 4)
	assert.Equal(t, linear.Point{Mileage: 30000, Price: 10000}, fig.Points[2])
	assert.Equal(t, 10000.0, fig.Line[0].Mileage)
	assert.Equal(t, 40000.0, fig.Line[1].Mileage)
	assert.InDelta(t, 20000, fig.Line[0].Price, 1e-9)
	assert.InDelta(t, 5000, fig.Line[1].Price, 1e-9)
	assert.Nil(t, fig.Query)

	withQuery := fig.WithQuery(25000, 12500)
	require.NotNil(t, withQuery.Query)
	assert.Equal(t, 25000.0, withQuery.Query.Mileage)
	assert.Nil(t, fig.Query, "WithQuery must not modify the receiver")
}
