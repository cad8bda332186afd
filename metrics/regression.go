// Package metrics provides goodness-of-fit measures for the price model.
//
// Regression Metrics:
//   - CoefficientOfDetermination: R² of the fitted line over a dataset
//   - R2Score: R² between observed and predicted values
//   - MSE, RMSE, MAE: error magnitudes in price units
//
// Example usage:
//
//	r2, err := metrics.CoefficientOfDetermination(coef, km, price)
//	if errors.Is(err, scigoErrors.ErrDegenerateTarget) {
//		// every price is identical, R² is undefined
//	}
//	fmt.Println(metrics.GradeOf(r2))
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/linear"
	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
)

// CoefficientOfDetermination computes R² = 1 - SS_res/SS_tot of the line
// described by coef over the dataset (km, price).
//
// Every row is estimated with the same extrema, computed once from the full
// dataset, which gives the same result as re-deriving them for each row.
//
// Errors:
//   - ErrDegenerateTarget: if every price is identical (SS_tot == 0)
//   - ErrDegenerateRange: if every mileage is identical
//   - ErrDimensionMismatch: if km and price differ in length
func CoefficientOfDetermination(coef model.Coefficients, km, price []float64) (float64, error) {
	const op = "CoefficientOfDetermination"
	if len(price) == 0 {
		return 0, scigoErrors.NewModelError(op, "empty dataset", scigoErrors.ErrEmptyData)
	}
	if len(km) != len(price) {
		return 0, scigoErrors.NewDimensionError(op, len(price), len(km), 0)
	}

	p, err := linear.NewPredictorFromDataset(coef, model.Dataset{Mileage: km, Price: price})
	if err != nil {
		return 0, err
	}
	estimated, err := p.PredictAll(km)
	if err != nil {
		return 0, err
	}

	r2, err := R2Score(price, estimated)
	if err != nil {
		return 0, scigoErrors.Wrap(err, op)
	}
	return r2, nil
}

// R2Score calculates the coefficient of determination between observed and
// predicted values.
//
// Errors:
//   - ErrEmptyData: if yTrue is empty
//   - ErrDimensionMismatch: if the slices differ in length
//   - ErrDegenerateTarget: if yTrue has no variance
func R2Score(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, scigoErrors.NewModelError("R2Score", "empty vector", scigoErrors.ErrEmptyData)
	}
	if len(yPred) != n {
		return 0, scigoErrors.NewDimensionError("R2Score", n, len(yPred), 0)
	}

	mean := stat.Mean(yTrue, nil)

	// Total Sum of Squares (TSS) and Residual Sum of Squares (RSS)
	var tss, rss float64
	for i := 0; i < n; i++ {
		d := yTrue[i] - mean
		tss += d * d
		r := yTrue[i] - yPred[i]
		rss += r * r
	}

	if tss == 0 {
		return 0, scigoErrors.NewDegenerateTargetError("R2Score")
	}
	return 1 - rss/tss, nil
}

// MSE calculates the Mean Squared Error.
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, scigoErrors.NewValueError("MSE", "empty vector")
	}
	if len(yPred) != n {
		return 0, scigoErrors.NewDimensionError("MSE", n, len(yPred), 0)
	}

	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(n), nil
}

// RMSE calculates the Root Mean Squared Error, in the units of the target.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE calculates the Mean Absolute Error.
func MAE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, scigoErrors.NewValueError("MAE", "empty vector")
	}
	if len(yPred) != n {
		return 0, scigoErrors.NewDimensionError("MAE", n, len(yPred), 0)
	}

	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(n), nil
}
