package main

import (
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/pipeline"
	"github.com/ezoic/pricefit/pkg/ux"
	"github.com/ezoic/pricefit/store"
)

func newTrainCmd(a *app) *cobra.Command {
	var (
		iterations   int
		learningRate float64
		profileDir   string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit the line on the dataset and save the coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("iterations") {
				a.cfg.Training.Iterations = iterations
			}
			if cmd.Flags().Changed("learning-rate") {
				a.cfg.Training.LearningRate = learningRate
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if profileDir != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
			}
			return a.runTrain()
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", linear.DefaultIterations, "number of gradient descent passes")
	cmd.Flags().Float64Var(&learningRate, "learning-rate", linear.DefaultLearningRate, "gradient descent step size")
	cmd.Flags().StringVar(&profileDir, "profile", "", "write a CPU profile to this directory")
	addGraphFlags(cmd, a)
	return cmd
}

// runTrain fits the dataset and writes the coefficients file. Nothing is
// written when training fails.
func (a *app) runTrain() error {
	ds, err := dataset.Load(a.cfg.Dataset)
	if err != nil {
		return err
	}

	p := pipeline.New(linear.NewGradientDescent(a.cfg.TrainerOptions()...))
	coef, err := p.Fit(ds)
	if err != nil {
		return err
	}

	s := store.Open(a.cfg.Coefficients)
	if err := s.Save(coef); err != nil {
		return err
	}
	a.printer.Info("Training completed on %s rows, coefficients saved to %s (t0=%s, t1=%s).",
		ux.Value(ds.Len()), ux.Value(s.Path()), ux.Value(coef.T0), ux.Value(coef.T1))

	if !a.graph {
		return nil
	}
	predictor, err := p.Predictor()
	if err != nil {
		return err
	}
	fig, err := linear.NewFigure(ds, predictor)
	if err != nil {
		return err
	}
	return a.saveGraph(fig)
}
