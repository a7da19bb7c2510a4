package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spamsvm/pkg/core"
	"spamsvm/pkg/dataprep"
	"spamsvm/pkg/loader"
	"spamsvm/pkg/logging"
	"spamsvm/pkg/model"
	"spamsvm/pkg/selection"
)

func newSelectCmd(o *options) *cobra.Command {
	var (
		ff      featureFlags
		folds   int
		seed    int64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Grid search (learning rate, lambda) by k-fold cross-validation and test the winner",
		Long: `select shuffles the corpus with --seed, reserves the last of k+1 blocks as a
test set, fits the featurizer on the k cross-validation folds only, grid
searches selection.learning_rates x selection.lambdas and reports the test error
of the best pair.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := &o.cfg.Selection
			if cmd.Flags().Changed("folds") {
				sc.Folds = folds
			}
			if cmd.Flags().Changed("seed") {
				sc.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				sc.Workers = workers
			}
			featurizer, err := ff.apply(cmd, o)
			if err != nil {
				return err
			}

			corpus, err := o.cache.Get()
			if err != nil {
				return err
			}
			n := corpus.Len()
			perm := loader.Permutation(n, sc.Seed)
			blocks, err := loader.Blocks(perm, sc.Folds+1)
			if err != nil {
				return fmt.Errorf("%w: %d documents, %d folds", selection.ErrTooFewExamples, n, sc.Folds)
			}

			// Indicator words and vocabulary come from the folds only.
			train := loader.Concat(blocks[:sc.Folds], -1)
			trainDocs := make([]string, len(train))
			trainLabels := make([]float64, len(train))
			for k, i := range train {
				trainDocs[k] = corpus.Docs[i]
				trainLabels[k] = corpus.Labels[i]
			}
			if err := featurizer.Fit(trainDocs, trainLabels); err != nil {
				return err
			}
			X, err := featurizer.Transform(corpus.Docs)
			if err != nil {
				return err
			}

			sel, err := selection.New(X, corpus.Labels, perm, sc.Folds, o.cfg.Model.Iterations,
				model.NewLinearSVMFactory(), selection.WithWorkers(sc.Workers))
			if err != nil {
				return err
			}
			logging.Infof("select: %d documents, %d folds, %d grid cells",
				n, sc.Folds, len(sc.LearningRates)*len(sc.Lambdas))

			res, err := sel.GridSearch(sc.LearningRates, sc.Lambdas)
			if err != nil {
				return err
			}
			testErr, m, err := sel.Test(res.Best.LearningRate, res.Best.Lambda)
			if err != nil {
				return err
			}
			f1, err := testF1(m, X, corpus.Labels, sel.TestBlock())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "learning_rate  lambda  cv_error")
			for _, c := range res.Cells {
				fmt.Fprintf(out, "%-13g  %-6g  %.4f\n", c.LearningRate, c.Lambda, c.Error)
			}
			fmt.Fprintf(out, "best: learning_rate=%g lambda=%g cv_error=%.4f\n",
				res.Best.LearningRate, res.Best.Lambda, res.Best.Error)
			fmt.Fprintf(out, "test error: %.4f  spam F1: %.4f (%d held-out documents)\n",
				testErr, f1, len(sel.TestBlock()))
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVar(&folds, "folds", 0, "Number of cross-validation folds k (overrides selection.folds)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed (overrides selection.seed)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent grid cells (overrides selection.workers)")
	return cmd
}

func testF1(m model.Model, X core.FeatureMatrix, y []float64, test []int) (float64, error) {
	scores, err := m.Predict(X.Rows(test))
	if err != nil {
		return 0, err
	}
	yt := make([]float64, len(test))
	for k, i := range test {
		yt[k] = y[i]
	}
	_, _, f1 := model.PrecisionRecallF1(yt, model.Sign(scores), dataprep.Spam)
	return f1, nil
}
