package store

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/pkg/errors"
)

// CSVStore keeps the coefficients as a single "t0,t1" row.
type CSVStore struct {
	path string
}

// NewCSVStore creates a CSVStore at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the file path.
func (s *CSVStore) Path() string { return s.path }

// Save writes c, replacing any previous content.
func (s *CSVStore) Save(c model.Coefficients) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", s.path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", s.path)
		}
	}()

	return WriteCSV(f, c)
}

// Load reads the first row of the file.
func (s *CSVStore) Load() (model.Coefficients, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrMissing, "%s: %v", s.path, err)
	}
	defer func() { _ = f.Close() }()

	c, err := ReadCSV(f)
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(err, "%s", s.path)
	}
	return c, nil
}

// WriteCSV writes c as one CSV row with full float64 precision.
func WriteCSV(w io.Writer, c model.Coefficients) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{formatFloat(c.T0), formatFloat(c.T1)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the first CSV row of r. An empty input, a row with fewer
// than two values or non numeric values is ErrCorrupt.
func ReadCSV(r io.Reader) (model.Coefficients, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	record, err := cr.Read()
	if err == io.EOF {
		return model.Coefficients{}, errors.Wrap(ErrCorrupt, "empty file")
	}
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "%v", err)
	}
	if len(record) < 2 {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "expected 2 values, got %d", len(record))
	}

	t0, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "t0: %v", err)
	}
	t1, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return model.Coefficients{}, errors.Wrapf(ErrCorrupt, "t1: %v", err)
	}
	return model.Coefficients{T0: t0, T1: t1}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
