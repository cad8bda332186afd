package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezoic/pricefit/linear"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricefit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "data.csv", cfg.Dataset)
	assert.Equal(t, "theta.csv", cfg.Coefficients)
	assert.Equal(t, 300, cfg.Training.Iterations)
	assert.Equal(t, 0.5, cfg.Training.LearningRate)
	assert.Equal(t, 4890993.0, cfg.MaxMileage)

	gd := linear.NewGradientDescent(cfg.TrainerOptions()...)
	assert.Equal(t, 300, gd.Iterations())
	assert.Equal(t, 0.5, gd.LearningRate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
dataset: cars.csv
training:
  iterations: 1000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cars.csv", cfg.Dataset)
	assert.Equal(t, 1000, cfg.Training.Iterations)
	// untouched keys keep their defaults
	assert.Equal(t, 0.5, cfg.Training.LearningRate)
	assert.Equal(t, "theta.csv", cfg.Coefficients)
}

func TestLoad_Invalid(t *testing.T) {
	testData := map[string]string{
		"zero iterations":     "training:\n  iterations: 0\n",
		"negative rate":       "training:\n  learning_rate: -1\n",
		"unknown level":       "log_level: loud\n",
		"empty dataset":       "dataset: \"\"\n",
		"malformed yaml":      "training: [\n",
		"wrong type for rate": "training:\n  learning_rate: fast\n",
	}

	for name, content := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeConfig(t, "training:\n  iterations: -3\n"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Iterations", verrs[0].Field())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DefaultLocation(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
