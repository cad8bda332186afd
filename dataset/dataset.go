// Package dataset reads the mileage/price training file.
//
// The file is comma separated. A row is kept only when it has exactly two
// fields made of decimal digits; anything else (the header, blank lines,
// negative or fractional values, stray text) is skipped silently.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezoic/pricefit/core/model"
	"github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/pkg/log"
)

// DefaultPath is the dataset file looked up in the working directory.
const DefaultPath = "data.csv"

// Load reads the dataset at path.
func Load(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, errors.Wrapf(err, "check that dataset file %s exists and is readable", path)
	}
	defer func() { _ = f.Close() }()

	ds, skipped, err := Read(f)
	if err != nil {
		return model.Dataset{}, errors.Wrapf(err, "failed to read dataset %s", path)
	}

	log.GetLoggerWithName("dataset").Debug("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.PathKey, path,
		log.SamplesKey, ds.Len(),
		"skipped", skipped,
	)
	return ds, nil
}

// Read parses CSV rows from r. It returns the dataset and the number of rows
// that were skipped.
func Read(r io.Reader) (model.Dataset, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = false

	var ds model.Dataset
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Dataset{}, skipped, err
		}

		km, price, ok := parseRow(record)
		if !ok {
			skipped++
			continue
		}
		ds.Mileage = append(ds.Mileage, km)
		ds.Price = append(ds.Price, price)
	}
	return ds, skipped, nil
}

func parseRow(record []string) (km, price float64, ok bool) {
	if len(record) != 2 || !isDigits(record[0]) || !isDigits(record[1]) {
		return 0, 0, false
	}
	km, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return 0, 0, false
	}
	price, err = strconv.ParseFloat(record[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return km, price, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
