package main

import (
	"fmt"
	"math/rand"

	"spamsvm/pkg/core"
	"spamsvm/pkg/loader"
	"spamsvm/pkg/model"
	"spamsvm/pkg/selection"
)

// generateBinaryData creates two noisy Gaussian blobs with non-negative
// features. Rule: blob around (3, 1) → +1, blob around (1, 3) → -1.
func generateBinaryData(rng *rand.Rand, n int) (*core.Matrix, []float64) {
	X := core.NewMatrix(n, 2)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		cx, cy := 3.0, 1.0
		y[i] = 1
		if i%2 == 1 {
			cx, cy = 1, 3
			y[i] = -1
		}
		X.Set(i, 0, max(0, cx+rng.NormFloat64()*0.8))
		X.Set(i, 1, max(0, cy+rng.NormFloat64()*0.8))
	}
	return X, y
}

func main() {
	rng := rand.New(rand.NewSource(1))

	fmt.Println("=== Linear SVM with k-fold model selection ===")

	// Step 1. Generate dataset
	X, y := generateBinaryData(rng, 600)
	fmt.Printf("Generated %d samples with 2 features each.\n", len(y))

	// Step 2. One model with fixed hyperparameters
	svm, err := model.NewLinearSVM(X, y, 0.1)
	if err != nil {
		panic(err)
	}
	before, _ := svm.Objective(X, y)
	svm.Train(200, 1e-4)
	after, _ := svm.Objective(X, y)
	scores, _ := svm.Predict(X)
	fmt.Printf("Objective %.2f → %.2f, weights %.3f, training error %.3f\n",
		before, after, svm.Weights(), model.MisclassificationRate(scores, y))

	// Step 3. Grid search over (learning rate, lambda) with 5 folds + test block
	perm := loader.Permutation(len(y), 2)
	sel, err := selection.New(X, y, perm, 5, 200, model.NewLinearSVMFactory(), selection.WithWorkers(4))
	if err != nil {
		panic(err)
	}
	res, err := sel.GridSearch([]float64{1e-5, 1e-4, 1e-3}, []float64{0, 0.1, 1, 10})
	if err != nil {
		panic(err)
	}
	for _, c := range res.Cells {
		fmt.Printf("  lr=%-6g lambda=%-4g cv error %.4f\n", c.LearningRate, c.Lambda, c.Error)
	}
	fmt.Printf("Best: lr=%g lambda=%g (cv error %.4f)\n", res.Best.LearningRate, res.Best.Lambda, res.Best.Error)

	// Step 4. Held-out estimate
	testErr, _, err := sel.Test(res.Best.LearningRate, res.Best.Lambda)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Test error on %d held-out samples: %.4f\n", len(sel.TestBlock()), testErr)
}
