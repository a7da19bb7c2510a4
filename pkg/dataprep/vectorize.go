package dataprep

import "spamsvm/pkg/core"

// Vocabulary maps tokens to column indices in first-seen order.
type Vocabulary struct {
	Index map[string]int
	Terms []string
}

// BuildVocabulary indexes every token of the training documents.
func BuildVocabulary(docs []string) *Vocabulary {
	v := &Vocabulary{Index: map[string]int{}}
	for _, doc := range docs {
		for _, tok := range Tokenize(doc) {
			if _, ok := v.Index[tok]; !ok {
				v.Index[tok] = len(v.Terms)
				v.Terms = append(v.Terms, tok)
			}
		}
	}
	return v
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int { return len(v.Terms) }

// Transform returns raw term counts, one sparse row per document. Tokens
// outside the vocabulary are dropped.
func (v *Vocabulary) Transform(docs []string) *core.CSR {
	rows := make([]core.SparseRow, len(docs))
	for i, doc := range docs {
		row := core.SparseRow{}
		for _, tok := range Tokenize(doc) {
			if j, ok := v.Index[tok]; ok {
				row[j]++
			}
		}
		rows[i] = row
	}
	// indices come from the vocabulary itself, so they are always in range
	X, _ := core.NewCSR(rows, v.Len())
	return X
}
