package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyTransform(t *testing.T) {
	v := BuildVocabulary(scenarioDocs)
	assert.Equal(t, 9, v.Len())
	assert.Equal(t, []string{"buy", "now", "cheap", "meeting"}, v.Terms[:4])

	X := v.Transform([]string{"cheap cheap now", "unknown words only"})
	r, c := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 9, c)
	assert.Equal(t, 2.0, X.At(0, v.Index["cheap"]))
	assert.Equal(t, 1.0, X.At(0, v.Index["now"]))
	assert.Equal(t, 2, X.NNZ())
}
