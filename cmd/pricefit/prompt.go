package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"

	"github.com/ezoic/pricefit/pkg/errors"
)

var (
	errMileageNotNumber = errors.New("the mileage of the car can only contain numbers, obviously")
	errMileageNegative  = errors.New("the mileage of your car can't be negative")
	errMileageTooHigh   = errors.New("the mileage of your car is impossibly high, please try something smaller")
)

var validate = validator.New()

// parseMileage parses and range checks a user supplied mileage.
func parseMileage(input string, max float64) (float64, error) {
	mileage, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(mileage) || math.IsInf(mileage, 0) {
		return 0, errMileageNotNumber
	}
	if err := validate.Var(mileage, "gte=0"); err != nil {
		return 0, errMileageNegative
	}
	if err := validate.Var(mileage, fmt.Sprintf("lte=%s", strconv.FormatFloat(max, 'f', -1, 64))); err != nil {
		return 0, errMileageTooHigh
	}
	return mileage, nil
}

// promptMileage asks for a mileage until a valid one is entered.
func promptMileage(max float64) (float64, error) {
	var input string
	err := huh.NewInput().
		Title("Please enter the car's mileage").
		Value(&input).
		Validate(func(s string) error {
			_, err := parseMileage(s, max)
			return err
		}).
		Run()
	if err != nil {
		return 0, errors.Wrap(err, "error while getting input")
	}
	return parseMileage(input, max)
}
