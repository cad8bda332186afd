// Command pricefit trains a mileage/price line on a CSV dataset and uses it to
// estimate car prices.
//
//	pricefit train [-v]          fit data.csv and write theta.csv
//	pricefit estimate [-v]       prompt for a mileage and print its price
//	pricefit accuracy            print the R² of theta.csv over data.csv
package main

import (
	"os"

	"github.com/ezoic/pricefit/pkg/ux"
)

func main() {
	printer := ux.NewPrinter()
	if err := newRootCmd(printer).Execute(); err != nil {
		reportError(printer, err)
		os.Exit(1)
	}
}
