// Package store persists fitted coefficients between the training run and
// later estimation or accuracy runs.
//
// Two formats are supported, chosen by file extension:
//
//   - .json: {"t0": ..., "t1": ...}
//   - anything else: a single CSV row "t0,t1"
//
// The record is a flat pair with no schema tag.
package store

import (
	"path/filepath"
	"strings"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/pkg/errors"
)

// DefaultPath is the coefficients file looked up in the working directory.
const DefaultPath = "theta.csv"

var (
	// ErrMissing is returned by Load when no coefficients file exists.
	ErrMissing = errors.New("coefficients file is missing or unreadable")
	// ErrCorrupt is returned by Load when the file holds invalid values.
	ErrCorrupt = errors.New("coefficients file contains invalid values")
)

// Store reads and writes one Coefficients record.
//
// Load wraps ErrMissing or ErrCorrupt on failure. The returned coefficients
// are unspecified when err != nil; use LoadOrDefault for the (0, 0) fallback.
type Store interface {
	Save(c model.Coefficients) error
	Load() (model.Coefficients, error)
	Path() string
}

// Open returns the Store for path based on its extension.
func Open(path string) Store {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return &JSONStore{path: path}
	}
	return &CSVStore{path: path}
}

// LoadOrDefault loads the coefficients from s. On any Load error it discards
// whatever s returned and gives back the untrained (0, 0) pair together with
// the error, so the caller can warn and carry on.
func LoadOrDefault(s Store) (model.Coefficients, error) {
	c, err := s.Load()
	if err != nil {
		return model.Coefficients{}, err
	}
	return c, nil
}
