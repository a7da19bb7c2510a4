package model

import (
	"errors"
	"fmt"

	"spamsvm/pkg/core"
)

var (
	// ErrBadLabel is returned when a label is not +1 or -1.
	ErrBadLabel = errors.New("labels must be +1 or -1")
	// ErrNegativeLambda is returned for a negative regularization strength.
	ErrNegativeLambda = errors.New("regularization strength must be non-negative")
)

// Model is a trainable binary scorer. Predict returns raw real-valued scores;
// the sign is the predicted class.
type Model interface {
	Train(iterations int, learningRate float64)
	Predict(X core.FeatureMatrix) ([]float64, error)
}

// Factory builds a fresh, untrained model on the given training rows.
type Factory func(X core.FeatureMatrix, y []float64, lambda float64) (Model, error)

// NewLinearSVMFactory returns a Factory producing *LinearSVM models.
func NewLinearSVMFactory(opts ...Option) Factory {
	return func(X core.FeatureMatrix, y []float64, lambda float64) (Model, error) {
		return NewLinearSVM(X, y, lambda, opts...)
	}
}

// CheckLabels verifies that y is row-aligned with X and holds only ±1.
func CheckLabels(X core.FeatureMatrix, y []float64) error {
	r, _ := X.Dims()
	if r != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", core.ErrDimMismatch, r, len(y))
	}
	for i, v := range y {
		if v != 1 && v != -1 {
			return fmt.Errorf("%w: y[%d] = %v", ErrBadLabel, i, v)
		}
	}
	return nil
}
