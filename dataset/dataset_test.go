package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	testData := map[string]struct {
		input   string
		mileage []float64
		price   []float64
		skipped int
	}{
		"header and rows": {
			input:   "km,price\n240000,3650\n139800,3800\n",
			mileage: []float64{240000, 139800},
			price:   []float64{3650, 3800},
			skipped: 1,
		},
		"invalid rows skipped": {
			input:   "km,price\n-5,100\n12.5,300\n10,abc\n1,2,3\n\n61789,8290\n",
			mileage: []float64{61789},
			price:   []float64{8290},
			skipped: 5,
		},
		"empty": {
			input: "",
		},
		"leading space is not a digit": {
			input:   "100, 200\n300,400\n",
			mileage: []float64{300},
			price:   []float64{400},
			skipped: 1,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, skipped, err := Read(strings.NewReader(td.input))
			require.NoError(t, err)
			assert.Equal(t, td.mileage, ds.Mileage)
			assert.Equal(t, td.price, ds.Price)
			assert.Equal(t, td.skipped, skipped)
		})
	}
}

func TestRead_StrayQuotes(t *testing.T) {
	testData := map[string]struct {
		input   string
		rows    int
		skipped int
	}{
		"bare quote in field": {
			input:   "km,price\nab\"c,1\n10000,20000\n20000,15000\n",
			rows:    2,
			skipped: 2,
		},
		"quoted digits": {
			input:   "\"10000\",\"20000\"\n20000,15000\n",
			rows:    2,
			skipped: 0,
		},
		"unterminated quote": {
			input:   "10000,20000\n\"unterminated,1\n",
			rows:    1,
			skipped: 1,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, skipped, err := Read(strings.NewReader(td.input))
			require.NoError(t, err)
			assert.Equal(t, td.rows, ds.Len())
			assert.Equal(t, td.skipped, skipped)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("km,price\n10000,20000\n20000,15000\n"), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.NoError(t, ds.Validate())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
