package store

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/pkg/errors"
)

// JSONStore keeps the coefficients as a JSON object.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file path.
func (s *JSONStore) Path() string { return s.path }

// Save writes c, replacing any previous content.
func (s *JSONStore) Save(c model.Coefficients) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode coefficients")
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.path)
	}
	return nil
}

// Load decodes the file. Both keys are required.
func (s *JSONStore) Load() (model.Coefficients, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrMissing, "%s: %v", s.path, err)
	}

	var raw struct {
		T0 *float64 `json:"t0"`
		T1 *float64 `json:"t1"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "%s: %v", s.path, err)
	}
	if raw.T0 == nil || raw.T1 == nil {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "%s: t0 and t1 are required", s.path)
	}
	return model.Coefficients{T0: *raw.T0, T1: *raw.T1}, nil
}
