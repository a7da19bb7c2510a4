package dataprep

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"spamsvm/pkg/core"
)

// Class labels used throughout the text pipeline.
const (
	Spam = -1.0
	Ham  = 1.0
)

var (
	ErrLengthMismatch = errors.New("documents and labels differ in length")
	ErrBadLabel       = errors.New("labels must be +1 (ham) or -1 (spam)")
	ErrBadThreshold   = errors.New("threshold must be at least 1")
)

// Tokenize splits a document on whitespace.
func Tokenize(doc string) []string { return strings.Fields(doc) }

// CountTokens returns the occurrence count of every token in doc.
func CountTokens(doc string) map[string]int {
	counts := map[string]int{}
	for _, tok := range Tokenize(doc) {
		counts[tok]++
	}
	return counts
}

// IndicatorWords are tokens seen often in one class and never in the other.
type IndicatorWords struct {
	Spam map[string]struct{}
	Ham  map[string]struct{}
}

// Sorted returns both sets in lexical order.
func (w IndicatorWords) Sorted() (spam, ham []string) {
	return sortedKeys(w.Spam), sortedKeys(w.Ham)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FindFrequentIndicatorWords collects, per class, the tokens that occur at
// least threshold times in that class and never in the other. A token seen in
// both classes is excluded from both sets whatever its counts.
func FindFrequentIndicatorWords(docs []string, labels []float64, threshold int) (IndicatorWords, error) {
	if len(docs) != len(labels) {
		return IndicatorWords{}, fmt.Errorf("%w: %d documents, %d labels", ErrLengthMismatch, len(docs), len(labels))
	}
	if threshold < 1 {
		return IndicatorWords{}, fmt.Errorf("%w: %d", ErrBadThreshold, threshold)
	}

	spamCount := map[string]int{}
	hamCount := map[string]int{}
	for i, doc := range docs {
		var counts map[string]int
		switch labels[i] {
		case Spam:
			counts = spamCount
		case Ham:
			counts = hamCount
		default:
			return IndicatorWords{}, fmt.Errorf("%w: labels[%d] = %v", ErrBadLabel, i, labels[i])
		}
		for _, tok := range Tokenize(doc) {
			counts[tok]++
		}
	}

	return IndicatorWords{
		Spam: exclusive(spamCount, hamCount, threshold),
		Ham:  exclusive(hamCount, spamCount, threshold),
	}, nil
}

func exclusive(own, other map[string]int, threshold int) map[string]struct{} {
	out := map[string]struct{}{}
	for tok, c := range own {
		if _, seen := other[tok]; seen {
			continue
		}
		if c >= threshold {
			out[tok] = struct{}{}
		}
	}
	return out
}

// DocumentToFeatures projects each document onto two columns: the summed
// counts of its spam indicator tokens and of its ham indicator tokens.
func DocumentToFeatures(docs []string, words IndicatorWords) *core.Matrix {
	X := core.NewMatrix(len(docs), 2)
	for i, doc := range docs {
		for tok, c := range CountTokens(doc) {
			if _, ok := words.Spam[tok]; ok {
				X.Data[2*i] += float64(c)
			}
			if _, ok := words.Ham[tok]; ok {
				X.Data[2*i+1] += float64(c)
			}
		}
	}
	return X
}
