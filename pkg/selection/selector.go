// Package selection picks SVM hyperparameters by k-fold cross-validation over a
// grid and estimates generalization error on a reserved test block.
//
// The caller supplies the row permutation, so every routine here is a pure
// function of its inputs. Folds and grid cells are independent and may be
// evaluated concurrently (WithWorkers) without changing any result.
package selection

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"spamsvm/pkg/core"
	"spamsvm/pkg/loader"
	"spamsvm/pkg/logging"
	"spamsvm/pkg/model"
)

var (
	// ErrTooFewExamples is returned when the permutation cannot fill k+1 blocks.
	ErrTooFewExamples = errors.New("selection: fewer examples than k+1 blocks")
	// ErrBadPermutation is returned when perm is not a permutation of the rows.
	ErrBadPermutation = errors.New("selection: not a permutation of the rows")
	// ErrEmptyGrid is returned by GridSearch for an empty candidate list.
	ErrEmptyGrid = errors.New("selection: empty hyperparameter grid")
	// ErrNoTrainingFolds is returned by CrossValidate when k = 1.
	ErrNoTrainingFolds = errors.New("selection: cross-validation needs k >= 2")
	// ErrBadConfig covers non-positive k and negative iteration counts.
	ErrBadConfig = errors.New("selection: invalid configuration")
)

// Selector holds a fixed fold partition of one dataset.
type Selector struct {
	X          core.FeatureMatrix
	Y          []float64
	Iterations int

	folds   [][]int
	test    []int
	factory model.Factory
	workers int
}

// Option configures a Selector.
type Option func(*Selector)

// WithWorkers evaluates folds and grid cells on up to n goroutines.
func WithWorkers(n int) Option {
	return func(s *Selector) { s.workers = n }
}

// New partitions perm into k cross-validation folds plus one test block.
func New(X core.FeatureMatrix, y []float64, perm []int, k, iterations int, factory model.Factory, opts ...Option) (*Selector, error) {
	if k < 1 || iterations < 0 || factory == nil {
		return nil, fmt.Errorf("%w: k=%d iterations=%d", ErrBadConfig, k, iterations)
	}
	if err := model.CheckLabels(X, y); err != nil {
		return nil, err
	}
	if err := checkPermutation(perm, len(y)); err != nil {
		return nil, err
	}

	blocks, err := loader.Blocks(perm, k+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %d examples, k=%d", ErrTooFewExamples, len(perm), k)
	}

	s := &Selector{
		X:          X,
		Y:          y,
		Iterations: iterations,
		folds:      blocks[:k],
		test:       blocks[k],
		factory:    factory,
		workers:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: %d indices for %d rows", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, i := range perm {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("%w: index %d", ErrBadPermutation, i)
		}
		seen[i] = true
	}
	return nil
}

// Folds returns the k cross-validation blocks.
func (s *Selector) Folds() [][]int { return s.folds }

// TestBlock returns the reserved test indices.
func (s *Selector) TestBlock() []int { return s.test }

func (s *Selector) subset(idx []int) (core.FeatureMatrix, []float64) {
	y := make([]float64, len(idx))
	for k, i := range idx {
		y[k] = s.Y[i]
	}
	return s.X.Rows(idx), y
}

// fitAndScore trains a fresh model on train and returns its 0/1 error on eval.
func (s *Selector) fitAndScore(train, eval []int, lr, lambda float64) (float64, model.Model, error) {
	Xtr, ytr := s.subset(train)
	m, err := s.factory(Xtr, ytr, lambda)
	if err != nil {
		return 0, nil, err
	}
	m.Train(s.Iterations, lr)

	Xev, yev := s.subset(eval)
	scores, err := m.Predict(Xev)
	if err != nil {
		return 0, nil, err
	}
	// NaN and ±Inf scores never count as misclassified.
	if bad := nonFinite(scores); bad > 0 {
		logging.Warnf("selection: lr=%g lambda=%g produced %d non-finite scores of %d, training diverged",
			lr, lambda, bad, len(scores))
	}
	return model.MisclassificationRate(scores, yev), m, nil
}

func nonFinite(scores []float64) int {
	n := 0
	for _, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			n++
		}
	}
	return n
}

// run calls fn(0..n-1), concurrently when workers > 1.
func (s *Selector) run(n int, fn func(i int) error) error {
	if s.workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go directive is 1.21)
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}

// CrossValidate returns the mean validation error over the k folds, each fold
// scored by a model trained on the remaining k-1 folds.
func (s *Selector) CrossValidate(lr, lambda float64) (float64, error) {
	k := len(s.folds)
	if k < 2 {
		return 0, ErrNoTrainingFolds
	}
	errs := make([]float64, k)
	err := s.run(k, func(i int) error {
		e, _, err := s.fitAndScore(loader.Concat(s.folds, i), s.folds[i], lr, lambda)
		if err != nil {
			return fmt.Errorf("fold %d: %w", i, err)
		}
		errs[i] = e
		return nil
	})
	if err != nil {
		return 0, err
	}
	return stat.Mean(errs, nil), nil
}

// Cell is one evaluated grid point.
type Cell struct {
	LearningRate float64
	Lambda       float64
	Error        float64
}

// Result is the outcome of a grid search. Cells lists every evaluated pair in
// search order (learning rate outer, lambda inner).
type Result struct {
	Best  Cell
	Cells []Cell
}

// GridSearch cross-validates every (learning rate, lambda) pair and returns the
// one with the smallest mean error. On exact ties the first pair in search
// order wins.
func (s *Selector) GridSearch(lrs, lambdas []float64) (Result, error) {
	if len(lrs) == 0 || len(lambdas) == 0 {
		return Result{}, ErrEmptyGrid
	}

	cells := make([]Cell, 0, len(lrs)*len(lambdas))
	for _, lr := range lrs {
		for _, lambda := range lambdas {
			cells = append(cells, Cell{LearningRate: lr, Lambda: lambda})
		}
	}

	// Folds run sequentially inside each cell; parallelism is across cells.
	inner := *s
	inner.workers = 1
	err := s.run(len(cells), func(i int) error {
		e, err := inner.CrossValidate(cells[i].LearningRate, cells[i].Lambda)
		if err != nil {
			return fmt.Errorf("lr=%g lambda=%g: %w", cells[i].LearningRate, cells[i].Lambda, err)
		}
		cells[i].Error = e
		logging.Debugf("selection: lr=%g lambda=%g cv error %.4f", cells[i].LearningRate, cells[i].Lambda, e)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	best := cells[0]
	for _, c := range cells[1:] {
		if c.Error < best.Error {
			best = c
		}
	}
	logging.Infof("selection: best lr=%g lambda=%g cv error %.4f over %d cells",
		best.LearningRate, best.Lambda, best.Error, len(cells))
	return Result{Best: best, Cells: cells}, nil
}

// Test trains on all k folds and returns the error on the reserved block
// together with the trained model.
func (s *Selector) Test(lr, lambda float64) (float64, model.Model, error) {
	return s.fitAndScore(loader.Concat(s.folds, -1), s.test, lr, lambda)
}
