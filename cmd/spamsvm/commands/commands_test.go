package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	spam := []string{"buy now cheap", "cheap loans now", "win cash now", "cheap pills buy now", "cash prize win"}
	ham := []string{"meeting at noon", "project meeting notes", "lunch at noon", "notes for the project", "see you at lunch"}

	var b strings.Builder
	b.WriteString("label,text\n")
	for i := 0; i < 4; i++ {
		for j := range spam {
			fmt.Fprintf(&b, "spam,%s\nham,%s\n", spam[j], ham[j])
		}
	}
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestIndicatorsCommand(t *testing.T) {
	out, err := run(t, "indicators", "--data", writeCorpus(t), "--threshold", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "spam (5): buy cash cheap now win")
	assert.Contains(t, out, "ham (6): at lunch meeting noon notes project")
}

func TestTrainCommand(t *testing.T) {
	out, err := run(t, "train", "--data", writeCorpus(t),
		"--features", "indicators", "--threshold", "4", "--lr", "0.01", "--lambda", "0.1", "--iterations", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "examples: 40  features: 2")
	assert.Contains(t, out, "training error: 0.0000")
}

func TestTrainCommandBagOfWords(t *testing.T) {
	out, err := run(t, "train", "--data", writeCorpus(t), "--features", "bow", "--lr", "0.01", "--iterations", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "examples: 40")
	assert.Contains(t, out, "training error: 0.0000")
}

func TestSelectCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
data:
  features: bow
model:
  iterations: 20
selection:
  folds: 3
  seed: 7
  workers: 2
  learning_rates: [0.001, 0.01]
  lambdas: [0, 0.1]
`), 0o644))

	out, err := run(t, "select", "--config", cfg, "--data", writeCorpus(t))
	require.NoError(t, err)
	assert.Contains(t, out, "best: learning_rate=")
	assert.Contains(t, out, "test error: ")
	assert.Equal(t, 4, strings.Count(out, "\n0.0"))
}

func TestSelectTooManyFolds(t *testing.T) {
	_, err := run(t, "select", "--data", writeCorpus(t), "--folds", "40")
	assert.Error(t, err)
}

func TestSelectSingleFoldRejectedByConfig(t *testing.T) {
	out, err := run(t, "select", "--data", writeCorpus(t), "--folds", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Selection.Folds")
	assert.NotContains(t, out, "learning_rate")
}

func TestMissingData(t *testing.T) {
	_, err := run(t, "train")
	assert.Error(t, err)

	_, err = run(t, "train", "--data", filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

func TestBadFeatureMode(t *testing.T) {
	_, err := run(t, "train", "--data", writeCorpus(t), "--features", "tfidf")
	assert.Error(t, err)
}
