package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
data:
  path: corpus.csv
  features: bow
model:
  lambda: 0.5
selection:
  folds: 3
  seed: 42
  learning_rates: [0.1, 0.01]
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "corpus.csv", cfg.Data.Path)
	assert.Equal(t, FeaturesBagOfWords, cfg.Data.Features)
	assert.Equal(t, 10, cfg.Data.Threshold)
	assert.Equal(t, 0.5, cfg.Model.Lambda)
	assert.Equal(t, 100, cfg.Model.Iterations)
	assert.Equal(t, 3, cfg.Selection.Folds)
	assert.Equal(t, int64(42), cfg.Selection.Seed)
	assert.Equal(t, []float64{0.1, 0.01}, cfg.Selection.LearningRates)
	assert.Equal(t, Default().Selection.Lambdas, cfg.Selection.Lambdas)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":     "model:\n  momentum: 0.9\n",
		"bad features":    "data:\n  features: tfidf\n",
		"zero threshold":  "data:\n  threshold: 0\n",
		"zero lr":         "model:\n  learning_rate: 0\n",
		"negative lambda": "model:\n  lambda: -1\n",
		"no folds":        "selection:\n  folds: 0\n",
		"single fold":     "selection:\n  folds: 1\n",
		"empty grid":      "selection:\n  lambdas: []\n",
		"negative grid":   "selection:\n  learning_rates: [0.1, -0.1]\n",
		"bad level":       "log:\n  level: loud\n",
		"not yaml":        "model: [",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  iterations: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Model.Iterations)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
