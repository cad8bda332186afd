package main

import (
	"github.com/spf13/cobra"

	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/pipeline"
	"github.com/ezoic/pricefit/pkg/ux"
)

func newAccuracyCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Report the coefficient of determination of the saved coefficients",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runAccuracy(details)
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "also print MSE, RMSE and MAE")
	return cmd
}

func (a *app) runAccuracy(details bool) error {
	coef := a.loadCoefficients()

	ds, err := dataset.Load(a.cfg.Dataset)
	if err != nil {
		return err
	}

	report, err := pipeline.Evaluate(coef, ds)
	if err != nil {
		return err
	}

	a.printer.Accuracy(a.cfg.Dataset, report.R2)
	if details {
		a.printer.Info("MSE: %s  RMSE: %s  MAE: %s",
			ux.Value(report.MSE), ux.Value(report.RMSE), ux.Value(report.MAE))
	}
	return nil
}
