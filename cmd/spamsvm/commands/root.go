package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spamsvm/pkg/config"
	"spamsvm/pkg/data"
	"spamsvm/pkg/logging"
)

// options is shared by all subcommands of one root command.
type options struct {
	configPath string
	dataPath   string
	logLevel   string

	cfg   *config.Config
	cache *data.Cache
}

// NewRootCmd builds the spamsvm command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "spamsvm",
		Short: "Linear SVM spam detection with k-fold model selection",
		Long: `spamsvm trains a linear SVM by full-batch hinge-loss gradient descent on a
labeled corpus (CSV: label,text with label spam/ham or -1/1).

Commands:
  spamsvm indicators   # list spam-only and ham-only indicator words
  spamsvm train        # fit one model and report training metrics
  spamsvm select       # grid search by k-fold cross-validation, then test`,
		SilenceUsage:      true,
		PersistentPreRunE: o.setup,
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "",
		"Path to YAML config file (defaults are used when empty)")
	root.PersistentFlags().StringVar(&o.dataPath, "data", "",
		"Path to the labeled corpus CSV (overrides data.path)")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides log.level)")

	root.AddCommand(
		newIndicatorsCmd(o),
		newTrainCmd(o),
		newSelectCmd(o),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	if o.dataPath != "" {
		cfg.Data.Path = o.dataPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Console: cfg.Log.Console}); err != nil {
		return err
	}
	if cfg.Data.Path == "" {
		return fmt.Errorf("no corpus given: set --data or data.path")
	}

	o.cfg = cfg
	o.cache = data.NewFileCache(cfg.Data.Path)
	return nil
}
