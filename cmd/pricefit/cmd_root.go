package main

import (
	"github.com/spf13/cobra"

	"github.com/ezoic/pricefit/config"
	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/pkg/log"
	"github.com/ezoic/pricefit/pkg/ux"
	"github.com/ezoic/pricefit/plot"
	"github.com/ezoic/pricefit/store"
)

// app carries the state shared by every subcommand.
type app struct {
	printer *ux.Printer
	cfg     *config.Config

	configPath  string
	datasetPath string
	coefPath    string
	logLevel    string
	graph       bool
	graphOutput string
}

func newRootCmd(printer *ux.Printer) *cobra.Command {
	a := &app{printer: printer}

	root := &cobra.Command{
		Use:           "pricefit",
		Short:         "Estimate car prices from their mileage with a linear regression",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default "+config.DefaultPath+" if present)")
	flags.StringVar(&a.datasetPath, "data", dataset.DefaultPath, "dataset CSV file")
	flags.StringVar(&a.coefPath, "theta", store.DefaultPath, "coefficients file (.csv or .json)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newTrainCmd(a), newEstimateCmd(a), newAccuracyCmd(a))
	return root
}

// setup loads the configuration and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Dataset = a.datasetPath
	}
	if flags.Changed("theta") {
		cfg.Coefficients = a.coefPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Graph.Output = a.graphOutput
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log.SetupLogger(cfg.LogLevel)
	a.cfg = cfg
	return nil
}

// loadCoefficients reads the coefficients file, warning and falling back to
// (0, 0) when it is missing or corrupt.
func (a *app) loadCoefficients() model.Coefficients {
	coef, err := store.LoadOrDefault(store.Open(a.cfg.Coefficients))
	switch {
	case errors.Is(err, store.ErrMissing):
		a.printer.Warning("Check that [%s] file exists and you have appropriate access rights. Defaulting to 0.0 value for theta variables.",
			a.cfg.Coefficients)
	case err != nil:
		a.printer.Error("[%s] file seems to be containing incorrect values. Defaulting to 0.0 value for theta variables.",
			a.cfg.Coefficients)
	}
	if err != nil {
		log.GetLoggerWithName("cli").Debug("Coefficients not loaded", log.ErrorKey, err.Error())
	}
	return coef
}

// saveGraph renders fig when the graph flag is set.
func (a *app) saveGraph(fig *linear.Figure) error {
	if !a.graph {
		return nil
	}
	if err := plot.Save(fig, a.cfg.Graph.Output); err != nil {
		return err
	}
	a.printer.Info("Graph saved to %s", ux.Value(a.cfg.Graph.Output))
	return nil
}

func addGraphFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().BoolVarP(&a.graph, "graph", "v", false, "render the dataset and the fitted line")
	cmd.Flags().StringVarP(&a.graphOutput, "output", "o", "graph.png", "graph file (.png, .svg, .pdf or .html)")
}
