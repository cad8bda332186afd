// Package plot renders a linear.Figure: the training rows as a scatter, the
// fitted line, and optionally the queried car.
//
// The output format follows the file extension: .html produces an
// interactive go-echarts page, anything gonum/plot can save (.png, .svg,
// .pdf, .jpg...) produces a static image.
package plot

import (
	"path/filepath"
	"strings"

	"github.com/ezoic/pricefit/linear"
)

// Axis and series labels shared by both renderers.
const (
	Title       = "Estimated price based on given data"
	XLabel      = "Mileage (km)"
	YLabel      = "Sale price ($)"
	PointsLabel = "Training data"
	LineLabel   = "Price estimation line"
	QueryLabel  = "User's car"
)

// Save renders fig to path.
func Save(fig *linear.Figure, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return SaveHTML(fig, path)
	}
	return SaveImage(fig, path)
}
