// Package linear fits and applies the mileage/price line.
//
// This package implements the two numerical halves of the model:
//
//   - GradientDescent: batch gradient descent on min-max normalized (x, y) pairs
//   - Predictor / Estimate: normalize a raw mileage, apply the fitted line and
//     map the result back to a raw price
//
// Training always runs a fixed number of full passes over the data; there is
// no convergence check and no early exit, so runtime is deterministic.
//
// Example usage:
//
//	gd := linear.NewGradientDescent()
//	coef, err := gd.Fit(xNorm, yNorm)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := linear.NewPredictorFromDataset(coef, ds)
//	price, err := p.Predict(42000)
package linear

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ezoic/pricefit/core/model"
	scigoErrors "github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/pkg/log"
)

// Default hyperparameters.
const (
	DefaultIterations   = 300
	DefaultLearningRate = 0.5

	progressEvery = 50
)

// GradientDescent fits y = t0 + t1*x by batch gradient descent.
type GradientDescent struct {
	state  *model.StateManager
	logger log.Logger

	iterations   int
	learningRate float64

	coef        model.Coefficients
	nIter       int
	lossHistory []float64
}

// Option is a configuration option for GradientDescent
type Option func(*GradientDescent)

// WithIterations sets the number of full passes over the data.
func WithIterations(n int) Option {
	return func(gd *GradientDescent) {
		gd.iterations = n
	}
}

// WithLearningRate sets the step size.
func WithLearningRate(rate float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = rate
	}
}

// WithLogger replaces the component logger.
func WithLogger(l log.Logger) Option {
	return func(gd *GradientDescent) {
		gd.logger = l
	}
}

// NewGradientDescent creates an unfitted trainer with 300 iterations and a
// learning rate of 0.5 unless overridden by options.
func NewGradientDescent(options ...Option) *GradientDescent {
	gd := &GradientDescent{
		state:        model.NewStateManager(),
		iterations:   DefaultIterations,
		learningRate: DefaultLearningRate,
	}

	gd.logger = log.GetLoggerWithName("linear").With(
		log.ModelNameKey, "GradientDescent",
	)

	for _, opt := range options {
		opt(gd)
	}
	return gd
}

// Fit runs batch gradient descent on normalized inputs and returns the final
// coefficients.
//
// Starting from t0 = t1 = 0, every iteration computes the residuals
// r_i = t0 + t1*x_i - y_i over all m points, then updates both coefficients
// simultaneously:
//
//	t0 -= rate * (1/m) * Σ r_i
//	t1 -= rate * (1/m) * Σ r_i * x_i
//
// Exactly Iterations() passes are made.
//
// Errors:
//   - ErrDimensionMismatch: if xNorm and yNorm differ in length
//   - ErrInsufficientData: if fewer than two points are given
//   - ValueError: if iterations or learning rate are not positive
func (gd *GradientDescent) Fit(xNorm, yNorm []float64) (_ model.Coefficients, err error) {
	defer scigoErrors.Recover(&err, "GradientDescent.Fit")

	m := len(xNorm)
	if len(yNorm) != m {
		return model.Coefficients{}, scigoErrors.NewDimensionError("GradientDescent.Fit", m, len(yNorm), 0)
	}
	if m < model.MinRows {
		return model.Coefficients{}, scigoErrors.NewInsufficientDataError("GradientDescent.Fit", m, model.MinRows)
	}
	if gd.iterations <= 0 {
		return model.Coefficients{}, scigoErrors.NewValueError("GradientDescent.Fit", "iterations must be positive")
	}
	if gd.learningRate <= 0 {
		return model.Coefficients{}, scigoErrors.NewValueError("GradientDescent.Fit", "learning rate must be positive")
	}

	startTime := time.Now()
	gd.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, m,
		"iterations", gd.iterations,
		"learning_rate", gd.learningRate,
	)

	var t0, t1 float64
	scale := gd.learningRate / float64(m)
	residual := make([]float64, m)
	gd.lossHistory = make([]float64, 0, gd.iterations)

	for iter := 0; iter < gd.iterations; iter++ {
		for i := 0; i < m; i++ {
			residual[i] = t0 + t1*xNorm[i] - yNorm[i]
		}
		gd.lossHistory = append(gd.lossHistory, floats.Dot(residual, residual)/float64(m))

		grad0 := floats.Sum(residual)
		grad1 := floats.Dot(residual, xNorm)
		t0 -= scale * grad0
		t1 -= scale * grad1

		if (iter+1)%progressEvery == 0 {
			gd.logger.Debug("Training progress",
				log.IterationKey, iter+1,
				log.LossKey, gd.lossHistory[iter],
				"t0", t0,
				"t1", t1,
			)
		}
	}

	gd.coef = model.Coefficients{T0: t0, T1: t1}
	gd.nIter = gd.iterations
	gd.state.SetFitted()

	gd.logger.Info("Training completed",
		log.DurationKey, time.Since(startTime).Milliseconds(),
		"t0", t0,
		"t1", t1,
	)
	return gd.coef, nil
}

// Coefficients returns the fitted coefficients.
func (gd *GradientDescent) Coefficients() (model.Coefficients, error) {
	if !gd.IsFitted() {
		return model.Coefficients{}, scigoErrors.NewNotFittedError("GradientDescent", "Coefficients")
	}
	return gd.coef, nil
}

// IsFitted reports whether Fit has completed.
func (gd *GradientDescent) IsFitted() bool {
	return gd.state.IsFitted()
}

// Iterations returns the configured number of passes.
func (gd *GradientDescent) Iterations() int {
	return gd.iterations
}

// LearningRate returns the configured step size.
func (gd *GradientDescent) LearningRate() float64 {
	return gd.learningRate
}

// NIterations returns the number of passes made by the last Fit.
func (gd *GradientDescent) NIterations() int {
	return gd.nIter
}

// LossHistory returns the mean squared error in normalized space measured at
// the start of every pass of the last Fit.
func (gd *GradientDescent) LossHistory() []float64 {
	out := make([]float64, len(gd.lossHistory))
	copy(out, gd.lossHistory)
	return out
}

// GetParams returns the hyperparameters keyed by their config names.
func (gd *GradientDescent) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"iterations":    gd.iterations,
		"learning_rate": gd.learningRate,
	}
}
