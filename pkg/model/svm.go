package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"spamsvm/pkg/core"
	"spamsvm/pkg/logging"
	"spamsvm/pkg/loss"
	"spamsvm/pkg/optim"
)

// LinearSVM is a linear classifier without bias trained by full-batch
// sub-gradient descent on the L2-regularized hinge loss
//
//	sum_i max(1 - y_i θ·x_i, 0) + (λ/2) θ·θ
type LinearSVM struct {
	X      core.FeatureMatrix
	Y      []float64
	lambda float64
	theta  []float64

	logEvery int
}

// Option configures a LinearSVM.
type Option func(*LinearSVM)

// WithLogEvery logs the training objective at debug level every n iterations.
func WithLogEvery(n int) Option {
	return func(m *LinearSVM) { m.logEvery = n }
}

// NewLinearSVM stores the training data and starts from θ = 0.
func NewLinearSVM(X core.FeatureMatrix, y []float64, lambda float64, opts ...Option) (*LinearSVM, error) {
	if err := CheckLabels(X, y); err != nil {
		return nil, err
	}
	if lambda < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeLambda, lambda)
	}
	_, d := X.Dims()
	m := &LinearSVM{X: X, Y: y, lambda: lambda, theta: make([]float64, d)}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Lambda returns the regularization strength.
func (m *LinearSVM) Lambda() float64 { return m.lambda }

// Weights returns a copy of θ.
func (m *LinearSVM) Weights() []float64 {
	w := make([]float64, len(m.theta))
	copy(w, m.theta)
	return w
}

// scores computes Xθ without shape checks.
func (m *LinearSVM) scores(X core.FeatureMatrix) []float64 {
	r, _ := X.Dims()
	out := make([]float64, r)
	for i := range out {
		out[i] = X.RowDot(i, m.theta)
	}
	return out
}

func (m *LinearSVM) checkCols(X core.FeatureMatrix) error {
	if _, c := X.Dims(); c != len(m.theta) {
		return fmt.Errorf("%w: %d features, model has %d", core.ErrDimMismatch, c, len(m.theta))
	}
	return nil
}

// Objective evaluates the regularized hinge loss of the current θ on (X, y).
func (m *LinearSVM) Objective(X core.FeatureMatrix, y []float64) (float64, error) {
	if err := m.checkCols(X); err != nil {
		return 0, err
	}
	if r, _ := X.Dims(); r != len(y) {
		return 0, fmt.Errorf("%w: %d rows, %d labels", core.ErrDimMismatch, r, len(y))
	}
	hinge, _ := loss.Hinge(y, m.scores(X))
	reg, _ := loss.L2(m.theta, m.lambda)
	return hinge + reg, nil
}

// Gradient returns the sub-gradient of the objective on the training data,
// sum_i -y_i v_i x_i + λθ with v_i = 1 when y_i θ·x_i <= 1.
func (m *LinearSVM) Gradient() []float64 {
	_, active := loss.Hinge(m.Y, m.scores(m.X))
	g := make([]float64, len(m.theta))
	for i, v := range active {
		if v != 0 {
			m.X.AddScaledRow(g, -m.Y[i]*v, i)
		}
	}
	_, reg := loss.L2(m.theta, m.lambda)
	floats.Add(g, reg)
	return g
}

// Train runs exactly iterations steps of θ -= learningRate * Gradient().
func (m *LinearSVM) Train(iterations int, learningRate float64) {
	opt := optim.NewSGD(learningRate)
	for it := 0; it < iterations; it++ {
		opt.Step(m.theta, m.Gradient())

		if m.logEvery > 0 && (it+1)%m.logEvery == 0 {
			obj, _ := m.Objective(m.X, m.Y)
			logging.Debugf("svm: iteration %d/%d objective %.6g", it+1, iterations, obj)
		}
	}
}

// Predict returns the raw scores Xθ.
func (m *LinearSVM) Predict(X core.FeatureMatrix) ([]float64, error) {
	if err := m.checkCols(X); err != nil {
		return nil, err
	}
	return m.scores(X), nil
}
