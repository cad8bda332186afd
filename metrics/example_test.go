package metrics_test

import (
	"fmt"
	"log/slog"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/metrics"
)

// ExampleMSE demonstrates Mean Squared Error calculation
func ExampleMSE() {
	yTrue := []float64{1.0, 2.0, 3.0, 4.0}
	yPred := []float64{1.1, 1.9, 3.2, 3.8}

	mse, err := metrics.MSE(yTrue, yPred)
	if err != nil {
		slog.Error("Test failed", "error", err)
		return
	}

	fmt.Printf("MSE: %.3f\n", mse)

	// Output: MSE: 0.025
}

// ExampleRMSE demonstrates Root Mean Squared Error calculation
func ExampleRMSE() {
	yTrue := []float64{10.0, 20.0, 30.0}
	yPred := []float64{12.0, 18.0, 32.0}

	rmse, err := metrics.RMSE(yTrue, yPred)
	if err != nil {
		slog.Error("Test failed", "error", err)
		return
	}

	fmt.Printf("RMSE: %.2f\n", rmse)

	// Output: RMSE: 2.00
}

// ExampleCoefficientOfDetermination scores a line that fits the data exactly
func ExampleCoefficientOfDetermination() {
	km := []float64{10000, 20000, 30000, 40000}
	price := []float64{20000, 15000, 10000, 5000}

	// y_norm = 1 - x_norm
	r2, err := metrics.CoefficientOfDetermination(model.Coefficients{T0: 1, T1: -1}, km, price)
	if err != nil {
		slog.Error("Test failed", "error", err)
		return
	}

	fmt.Printf("R²: %.4f (%s, %d%%)\n", r2, metrics.GradeOf(r2), metrics.Percent(r2))

	// Output: R²: 1.0000 (good, 100%)
}
