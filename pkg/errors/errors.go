// Package errors defines the error taxonomy used across pricefit.
//
// Every failure a caller may want to branch on has either a sentinel value
// (checked with Is) or a concrete type (extracted with As):
//
//   - ErrDegenerateRange / *DegenerateRangeError: a normalization axis has zero variance
//   - ErrDegenerateTarget: the observed prices have zero variance, R² is undefined
//   - ErrInsufficientData / *InsufficientDataError: fewer than two dataset rows
//   - *ModelError, *ValueError, *DimensionError, *NotFittedError: general model failures
//
// Wrapping goes through github.com/cockroachdb/errors so that wrapped errors
// carry a stack trace when formatted with %+v.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	ErrEmptyData         = errors.New("empty data")
	ErrNotImplemented    = errors.New("not implemented")
	ErrDegenerateRange   = errors.New("degenerate range: minimum equals maximum")
	ErrDegenerateTarget  = errors.New("degenerate target: total sum of squares is zero")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrNotFitted         = errors.New("not fitted")
)

const prefix = "pricefit"

// ModelError is a generic failure inside a model operation that wraps a cause.
type ModelError struct {
	Op      string
	Message string
	Err     error
}

// NewModelError creates a ModelError for op with the given cause.
func NewModelError(op, message string, err error) *ModelError {
	return &ModelError{Op: op, Message: message, Err: err}
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %v", prefix, e.Op, e.Message, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// ValueError reports an invalid argument value.
type ValueError struct {
	Op      string
	Message string
}

// NewValueError creates a ValueError.
func NewValueError(op, message string) *ValueError {
	return &ValueError{Op: op, Message: message}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
}

// DimensionError reports mismatched sequence lengths.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

// NewDimensionError creates a DimensionError. Axis 0 refers to samples.
func NewDimensionError(op string, expected, got, axis int) *DimensionError {
	return &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: dimension mismatch on axis %d: expected %d, got %d",
		prefix, e.Op, e.Axis, e.Expected, e.Got)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// NotFittedError is returned when a model is used before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

// NewNotFittedError creates a NotFittedError.
func NewNotFittedError(modelName, method string) *NotFittedError {
	return &NotFittedError{ModelName: modelName, Method: method}
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s: %s is not fitted yet, call Fit before %s", prefix, e.ModelName, e.Method)
}

func (e *NotFittedError) Is(target error) bool { return target == ErrNotFitted }

// DegenerateRangeError reports an axis whose minimum equals its maximum.
// Min-max normalization divides by zero on such an axis.
type DegenerateRangeError struct {
	Op    string
	Axis  string
	Value float64
}

// NewDegenerateRangeError creates a DegenerateRangeError for the named axis.
func NewDegenerateRangeError(op, axis string, value float64) *DegenerateRangeError {
	return &DegenerateRangeError{Op: op, Axis: axis, Value: value}
}

func (e *DegenerateRangeError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("%s: %s: every value equals %g, cannot normalize", prefix, e.Op, e.Value)
	}
	return fmt.Sprintf("%s: %s: every %s value equals %g, cannot normalize", prefix, e.Op, e.Axis, e.Value)
}

func (e *DegenerateRangeError) Is(target error) bool { return target == ErrDegenerateRange }

// InsufficientDataError reports a dataset with too few rows.
type InsufficientDataError struct {
	Op   string
	Got  int
	Need int
}

// NewInsufficientDataError creates an InsufficientDataError.
func NewInsufficientDataError(op string, got, need int) *InsufficientDataError {
	return &InsufficientDataError{Op: op, Got: got, Need: need}
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %s: dataset has %d rows, at least %d required", prefix, e.Op, e.Got, e.Need)
}

func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }

// NewDegenerateTargetError reports an R² computation over constant prices.
func NewDegenerateTargetError(op string) *ModelError {
	return NewModelError(op, "prices have no variance", ErrDegenerateTarget)
}

// ValidationError reports a parameter that failed validation.
type ValidationError struct {
	Param  string
	Reason string
	Value  interface{}
}

// NewValidationError creates a ValidationError.
func NewValidationError(param, reason string, value interface{}) *ValidationError {
	return &ValidationError{Param: param, Reason: reason, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s (%v): %s", prefix, e.Param, e.Value, e.Reason)
}

// New creates an error with a stack trace.
func New(msg string) error { return errors.New(msg) }

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error { return errors.Newf(format, args...) }

// Wrap annotates err with msg. Wrap returns nil if err is nil.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Recover converts a panic inside op into an error assigned to *errp.
// It must be called directly via defer.
func Recover(errp *error, op string) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = errors.Wrapf(err, "%s: recovered from panic", op)
			return
		}
		*errp = errors.Newf("%s: recovered from panic: %v", op, r)
	}
}
