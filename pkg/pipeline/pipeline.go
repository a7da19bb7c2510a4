package pipeline

import (
	"errors"
	"fmt"

	"spamsvm/pkg/core"
	"spamsvm/pkg/dataprep"
)

// ErrNotFitted is returned by Transform before Fit.
var ErrNotFitted = errors.New("featurizer used before Fit")

// Featurizer turns documents into a feature matrix: fit on training documents,
// transform any documents.
type Featurizer interface {
	Fit(docs []string, labels []float64) error
	Transform(docs []string) (core.FeatureMatrix, error)
}

// New returns the featurizer for a mode name ("indicators" or "bow").
func New(mode string, threshold int) (Featurizer, error) {
	switch mode {
	case "indicators":
		return &Indicators{Threshold: threshold}, nil
	case "bow":
		return &BagOfWords{}, nil
	}
	return nil, fmt.Errorf("unknown feature mode %q", mode)
}

// FitTransform fits f on docs and transforms the same docs.
func FitTransform(f Featurizer, docs []string, labels []float64) (core.FeatureMatrix, error) {
	if err := f.Fit(docs, labels); err != nil {
		return nil, err
	}
	return f.Transform(docs)
}

// Indicators is the two-column spam/ham indicator-word projection.
type Indicators struct {
	Threshold int
	Words     *dataprep.IndicatorWords
}

func (p *Indicators) Fit(docs []string, labels []float64) error {
	words, err := dataprep.FindFrequentIndicatorWords(docs, labels, p.Threshold)
	if err != nil {
		return err
	}
	p.Words = &words
	return nil
}

func (p *Indicators) Transform(docs []string) (core.FeatureMatrix, error) {
	if p.Words == nil {
		return nil, ErrNotFitted
	}
	return dataprep.DocumentToFeatures(docs, *p.Words), nil
}

// BagOfWords produces sparse raw term counts over the training vocabulary.
type BagOfWords struct {
	Vocab *dataprep.Vocabulary
}

func (p *BagOfWords) Fit(docs []string, _ []float64) error {
	p.Vocab = dataprep.BuildVocabulary(docs)
	return nil
}

func (p *BagOfWords) Transform(docs []string) (core.FeatureMatrix, error) {
	if p.Vocab == nil {
		return nil, ErrNotFitted
	}
	return p.Vocab.Transform(docs), nil
}
