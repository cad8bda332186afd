package main

import (
	"github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/pkg/log"
	"github.com/ezoic/pricefit/pkg/ux"
)

// reportError prints err in user terms. The full chain goes to the debug log.
func reportError(printer *ux.Printer, err error) {
	log.LogError(err, "Command failed")

	var rangeErr *errors.DegenerateRangeError
	switch {
	case errors.As(err, &rangeErr):
		field := rangeErr.Axis
		if field == "" {
			field = "field"
		}
		printer.Error("A whole %s column of the dataset is equal, which makes no sense for this algorithm.", field)
	case errors.Is(err, errors.ErrInsufficientData):
		printer.Error("Dataset is not large enough for this to work!")
	case errors.Is(err, errors.ErrDegenerateTarget):
		printer.Error("Data inside the dataset seems to be invalid for this operation.")
	default:
		printer.Error("%v", err)
	}
}
