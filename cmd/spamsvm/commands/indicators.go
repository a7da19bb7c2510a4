package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spamsvm/pkg/dataprep"
)

func newIndicatorsCmd(o *options) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "List words that occur only in spam or only in ham",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("threshold") {
				o.cfg.Data.Threshold = threshold
			}
			corpus, err := o.cache.Get()
			if err != nil {
				return err
			}
			words, err := dataprep.FindFrequentIndicatorWords(corpus.Docs, corpus.Labels, o.cfg.Data.Threshold)
			if err != nil {
				return err
			}

			spam, ham := words.Sorted()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "threshold: %d\n", o.cfg.Data.Threshold)
			fmt.Fprintf(out, "spam (%d): %s\n", len(spam), strings.Join(spam, " "))
			fmt.Fprintf(out, "ham (%d): %s\n", len(ham), strings.Join(ham, " "))
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0,
		"Minimum count of a word within its class (overrides data.threshold)")
	return cmd
}
