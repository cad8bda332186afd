// Package ux styles the messages pricefit prints for the user.
package ux

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ezoic/pricefit/metrics"
)

// Semantic colors
var (
	ColorInfo    = lipgloss.Color("12") // bright blue
	ColorSuccess = lipgloss.Color("10") // bright green
	ColorWarning = lipgloss.Color("11") // bright yellow
	ColorError   = lipgloss.Color("9")  // bright red
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Value:   lipgloss.NewStyle().Bold(true).Foreground(ColorInfo),
	Success: lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Bold(true).Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
}

// Printer writes styled messages. Errors and warnings go to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer on stdout and stderr.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Error prints "Error: msg".
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.Err, "%s %s\n", Styles.Error.Render("Error:"), fmt.Sprintf(format, args...))
}

// Warning prints "Warning: msg".
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.Err, "%s %s\n", Styles.Warning.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Value highlights v.
func Value(v interface{}) string {
	return Styles.Value.Render(fmt.Sprint(v))
}

// Price prints the rounded estimate, with a warning when it is negative.
func (p *Printer) Price(price float64) {
	// +0 turns a rounded -0 into 0
	rounded := math.RoundToEven(price) + 0
	fmt.Fprintf(p.Out, "The estimated value of this car is %s $.\n", Value(fmt.Sprintf("%.0f", rounded)))
	if price < 0 {
		fmt.Fprintf(p.Out, "In other words, %s\n", Styles.Error.Render("do not buy this car."))
	}
}

// GradeStyle returns the style for an accuracy grade.
func GradeStyle(g metrics.Grade) lipgloss.Style {
	switch g {
	case metrics.Good:
		return Styles.Success
	case metrics.Poor:
		return Styles.Error
	default:
		return Styles.Value
	}
}

// Accuracy prints the coefficient of determination and its rounded
// percentage, colored by grade.
func (p *Printer) Accuracy(dataset string, r2 float64) {
	fmt.Fprintf(p.Out, "The coefficient of determination of the linear regression on the dataset [%s] is %s.\n",
		dataset, Value(r2))
	pct := GradeStyle(metrics.GradeOf(r2)).Render(fmt.Sprintf("%d%%", metrics.Percent(r2)))
	fmt.Fprintf(p.Out, "It basically means that the resulting linear function has an accuracy of approx. %s.\n", pct)
}
