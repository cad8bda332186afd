// Package pipeline chains the normalizer, the trainer and the evaluator into
// the two operations the command line exposes: training a dataset and scoring
// coefficients against it.
package pipeline

import (
	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/metrics"
	"github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/pkg/log"
	"github.com/ezoic/pricefit/preprocessing"
)

// Pipeline normalizes both dataset axes and fits the line on the result.
type Pipeline struct {
	state  *model.StateManager
	logger log.Logger

	trainer *linear.GradientDescent
	mileage *preprocessing.MinMaxScaler
	price   *preprocessing.MinMaxScaler
}

// New creates a Pipeline around the given trainer. A nil trainer gets the
// default one.
func New(trainer *linear.GradientDescent) *Pipeline {
	if trainer == nil {
		trainer = linear.NewGradientDescent()
	}
	return &Pipeline{
		state:   model.NewStateManager(),
		logger:  log.GetLoggerWithName("Pipeline"),
		trainer: trainer,
		mileage: preprocessing.NewMinMaxScaler("mileage"),
		price:   preprocessing.NewMinMaxScaler("price"),
	}
}

// Fit trains on ds and returns the coefficients.
//
// The dataset is checked before anything else: with fewer than two rows the
// trainer is never invoked. A dataset where every mileage or every price is
// identical fails with a DegenerateRangeError naming the axis.
func (p *Pipeline) Fit(ds model.Dataset) (model.Coefficients, error) {
	if err := ds.Validate(); err != nil {
		return model.Coefficients{}, err
	}

	x, err := p.mileage.FitTransform(ds.Mileage)
	if err != nil {
		return model.Coefficients{}, errors.Wrap(err, "failed to normalize mileage")
	}
	y, err := p.price.FitTransform(ds.Price)
	if err != nil {
		return model.Coefficients{}, errors.Wrap(err, "failed to normalize price")
	}

	p.logger.Debug("Dataset normalized",
		log.SamplesKey, ds.Len(),
		"mileage_min", p.mileage.Extrema().Min,
		"mileage_max", p.mileage.Extrema().Max,
		"price_min", p.price.Extrema().Min,
		"price_max", p.price.Extrema().Max,
	)

	coef, err := p.trainer.Fit(x, y)
	if err != nil {
		return model.Coefficients{}, errors.Wrap(err, "failed to fit gradient descent")
	}

	p.state.SetFitted()
	return coef, nil
}

// Predictor returns a Predictor for the fitted coefficients and the extrema
// of the dataset passed to Fit.
func (p *Pipeline) Predictor() (*linear.Predictor, error) {
	if !p.state.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Predictor")
	}
	coef, err := p.trainer.Coefficients()
	if err != nil {
		return nil, err
	}
	return linear.NewPredictor(coef, p.mileage.Extrema(), p.price.Extrema())
}

// Trainer returns the underlying trainer.
func (p *Pipeline) Trainer() *linear.GradientDescent {
	return p.trainer
}

// IsFitted reports whether Fit succeeded.
func (p *Pipeline) IsFitted() bool {
	return p.state.IsFitted()
}

// Train is a convenience wrapper around New(nil).Fit(ds).
func Train(ds model.Dataset, options ...linear.Option) (model.Coefficients, error) {
	return New(linear.NewGradientDescent(options...)).Fit(ds)
}

// Report gathers the fit statistics of coefficients over a dataset.
type Report struct {
	R2    float64
	MSE   float64
	RMSE  float64
	MAE   float64
	Grade metrics.Grade
}

// Evaluate scores coef against ds.
//
// Errors:
//   - ErrDegenerateTarget: if every price is identical
//   - ErrDegenerateRange: if every mileage is identical
func Evaluate(coef model.Coefficients, ds model.Dataset) (*Report, error) {
	r2, err := metrics.CoefficientOfDetermination(coef, ds.Mileage, ds.Price)
	if err != nil {
		return nil, err
	}

	p, err := linear.NewPredictorFromDataset(coef, ds)
	if err != nil {
		return nil, err
	}
	estimated, err := p.PredictAll(ds.Mileage)
	if err != nil {
		return nil, err
	}

	report := &Report{R2: r2, Grade: metrics.GradeOf(r2)}
	if report.MSE, err = metrics.MSE(ds.Price, estimated); err != nil {
		return nil, err
	}
	if report.RMSE, err = metrics.RMSE(ds.Price, estimated); err != nil {
		return nil, err
	}
	if report.MAE, err = metrics.MAE(ds.Price, estimated); err != nil {
		return nil, err
	}

	log.GetLoggerWithName("Pipeline").Info("Evaluation completed",
		log.OperationKey, log.OperationEvaluate,
		log.SamplesKey, ds.Len(),
		"r2", r2,
		"rmse", report.RMSE,
	)
	return report, nil
}
