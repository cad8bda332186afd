package main

import (
	"github.com/spf13/cobra"

	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/linear"
)

func newEstimateCmd(a *app) *cobra.Command {
	var mileageFlag string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price of a car from its mileage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				mileage float64
				err     error
			)
			if cmd.Flags().Changed("mileage") {
				mileage, err = parseMileage(mileageFlag, a.cfg.MaxMileage)
			} else {
				mileage, err = promptMileage(a.cfg.MaxMileage)
			}
			if err != nil {
				return err
			}
			return a.runEstimate(mileage)
		},
	}

	cmd.Flags().StringVarP(&mileageFlag, "mileage", "m", "", "mileage of the car, prompted for when omitted")
	addGraphFlags(cmd, a)
	return cmd
}

func (a *app) runEstimate(mileage float64) error {
	coef := a.loadCoefficients()

	ds, err := dataset.Load(a.cfg.Dataset)
	if err != nil {
		return err
	}

	predictor, err := linear.NewPredictorFromDataset(coef, ds)
	if err != nil {
		return err
	}
	price, err := predictor.Predict(mileage)
	if err != nil {
		return err
	}
	a.printer.Price(price)

	if !a.graph {
		return nil
	}
	fig, err := linear.NewFigure(ds, predictor)
	if err != nil {
		return err
	}
	return a.saveGraph(fig.WithQuery(mileage, price))
}
