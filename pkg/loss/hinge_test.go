package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHinge(t *testing.T) {
	for _, test := range []struct {
		name   string
		y, s   []float64
		loss   float64
		active []float64
	}{
		{"outside margin", []float64{1, -1}, []float64{2, -3}, 0, []float64{0, 0}},
		{"on the kink", []float64{1, -1}, []float64{1, -1}, 0, []float64{1, 1}},
		{"inside margin", []float64{1}, []float64{0.25}, 0.75, []float64{1}},
		{"misclassified", []float64{-1, 1}, []float64{2, 0}, 4, []float64{1, 1}},
	} {
		l, a := Hinge(test.y, test.s)
		assert.InDelta(t, test.loss, l, 1e-12, test.name)
		assert.Equal(t, test.active, a, test.name)
	}
}

func TestL2(t *testing.T) {
	v, g := L2([]float64{1, -2}, 0.5)
	assert.InDelta(t, 1.25, v, 1e-12)
	assert.Equal(t, []float64{0.5, -1}, g)

	v, g = L2([]float64{3}, 0)
	assert.Zero(t, v)
	assert.Equal(t, []float64{0}, g)
}
