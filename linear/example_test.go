package linear_test

import (
	"fmt"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/preprocessing"
)

// ExampleGradientDescent fits a line on already normalized data
func ExampleGradientDescent() {
	gd := linear.NewGradientDescent(linear.WithIterations(300), linear.WithLearningRate(0.5))

	coef, err := gd.Fit([]float64{0, 1}, []float64{0, 1})
	if err != nil {
		return
	}

	fmt.Printf("t0=%.3f t1=%.3f\n", coef.T0, coef.T1)

	// Output: t0=0.000 t1=1.000
}

// ExamplePredictor trains on raw mileages and prices and estimates a new car
func ExamplePredictor() {
	ds := model.Dataset{
		Mileage: []float64{10000, 20000, 30000, 40000},
		Price:   []float64{20000, 15000, 10000, 5000},
	}

	x, _ := preprocessing.Normalize(ds.Mileage)
	y, _ := preprocessing.Normalize(ds.Price)
	coef, err := linear.NewGradientDescent().Fit(x, y)
	if err != nil {
		return
	}

	p, err := linear.NewPredictorFromDataset(coef, ds)
	if err != nil {
		return
	}
	price, _ := p.Predict(25000)
	fmt.Printf("Estimated price: %.0f\n", price)

	// Output: Estimated price: 12500
}
