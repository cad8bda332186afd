package benchmarks

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/metrics"
	"github.com/ezoic/pricefit/pipeline"
	"github.com/ezoic/pricefit/preprocessing"
)

var sizes = []struct {
	name string
	rows int
}{
	{"24", 24},
	{"1K", 1_000},
	{"100K", 100_000},
	{"1M", 1_000_000},
}

// syntheticCars generates a noisy, downward sloping mileage/price dataset.
func syntheticCars(rows int) model.Dataset {
	rng := rand.New(rand.NewPCG(42, 42))
	ds := model.Dataset{
		Mileage: make([]float64, rows),
		Price:   make([]float64, rows),
	}
	for i := 0; i < rows; i++ {
		km := float64(rng.IntN(250_000))
		ds.Mileage[i] = km
		ds.Price[i] = 9000 - 0.02*km + rng.NormFloat64()*500
	}
	return ds
}

// BenchmarkTrain measures the full normalize and 300-pass fit.
func BenchmarkTrain(b *testing.B) {
	for _, size := range sizes {
		ds := syntheticCars(size.rows)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size.rows * 2 * 8))
			for i := 0; i < b.N; i++ {
				if _, err := pipeline.Train(ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkGradientDescent isolates the update loop from normalization.
func BenchmarkGradientDescent(b *testing.B) {
	for _, size := range sizes {
		ds := syntheticCars(size.rows)
		x, err := preprocessing.Normalize(ds.Mileage)
		if err != nil {
			b.Fatal(err)
		}
		y, err := preprocessing.Normalize(ds.Price)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := linear.NewGradientDescent().Fit(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPredict(b *testing.B) {
	ds := syntheticCars(1_000)
	coef, err := pipeline.Train(ds)
	if err != nil {
		b.Fatal(err)
	}
	p, err := linear.NewPredictorFromDataset(coef, ds)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Predict(float64(i % 250_000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCoefficientOfDetermination(b *testing.B) {
	for _, size := range sizes {
		ds := syntheticCars(size.rows)
		coef := model.Coefficients{T0: 0.9, T1: -0.8}

		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := metrics.CoefficientOfDetermination(coef, ds.Mileage, ds.Price); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDatasetRead(b *testing.B) {
	for _, size := range sizes[:3] {
		ds := syntheticCars(size.rows)
		var buf bytes.Buffer
		buf.WriteString("km,price\n")
		for i := range ds.Mileage {
			fmt.Fprintf(&buf, "%d,%s\n", int(ds.Mileage[i]), strconv.Itoa(int(ds.Price[i])))
		}
		raw := buf.Bytes()

		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			for i := 0; i < b.N; i++ {
				if _, _, err := dataset.Read(bytes.NewReader(raw)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
