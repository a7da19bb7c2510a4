package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spamsvm/pkg/dataprep"
	"spamsvm/pkg/logging"
	"spamsvm/pkg/model"
	"spamsvm/pkg/pipeline"
)

// featureFlags are the overrides shared by train and select.
type featureFlags struct {
	features  string
	threshold int
}

func (f *featureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.features, "features", "",
		"Feature mode: indicators or bow (overrides data.features)")
	cmd.Flags().IntVar(&f.threshold, "threshold", 0,
		"Indicator word threshold (overrides data.threshold)")
}

func (f *featureFlags) apply(cmd *cobra.Command, o *options) (pipeline.Featurizer, error) {
	if cmd.Flags().Changed("features") {
		o.cfg.Data.Features = f.features
	}
	if cmd.Flags().Changed("threshold") {
		o.cfg.Data.Threshold = f.threshold
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return pipeline.New(o.cfg.Data.Features, o.cfg.Data.Threshold)
}

func newTrainCmd(o *options) *cobra.Command {
	var (
		ff         featureFlags
		lr         float64
		lambda     float64
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a linear SVM on the whole corpus and report training metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("lr") {
				o.cfg.Model.LearningRate = lr
			}
			if cmd.Flags().Changed("lambda") {
				o.cfg.Model.Lambda = lambda
			}
			if cmd.Flags().Changed("iterations") {
				o.cfg.Model.Iterations = iterations
			}
			featurizer, err := ff.apply(cmd, o)
			if err != nil {
				return err
			}

			corpus, err := o.cache.Get()
			if err != nil {
				return err
			}
			X, err := pipeline.FitTransform(featurizer, corpus.Docs, corpus.Labels)
			if err != nil {
				return err
			}

			mc := o.cfg.Model
			svm, err := model.NewLinearSVM(X, corpus.Labels, mc.Lambda, model.WithLogEvery(max(mc.Iterations/10, 1)))
			if err != nil {
				return err
			}
			logging.Infof("train: %s features, lr=%g lambda=%g iterations=%d",
				o.cfg.Data.Features, mc.LearningRate, mc.Lambda, mc.Iterations)
			svm.Train(mc.Iterations, mc.LearningRate)

			obj, err := svm.Objective(X, corpus.Labels)
			if err != nil {
				return err
			}
			scores, err := svm.Predict(X)
			if err != nil {
				return err
			}
			pred := model.Sign(scores)
			_, _, f1 := model.PrecisionRecallF1(corpus.Labels, pred, dataprep.Spam)

			r, c := X.Dims()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "examples: %d  features: %d\n", r, c)
			fmt.Fprintf(out, "objective: %.6g\n", obj)
			fmt.Fprintf(out, "training error: %.4f\n", model.MisclassificationRate(scores, corpus.Labels))
			fmt.Fprintf(out, "training accuracy: %.4f  spam F1: %.4f\n", model.Accuracy(corpus.Labels, pred), f1)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().Float64Var(&lr, "lr", 0, "Learning rate (overrides model.learning_rate)")
	cmd.Flags().Float64Var(&lambda, "lambda", 0, "Regularization strength (overrides model.lambda)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Gradient descent iterations (overrides model.iterations)")
	return cmd
}
