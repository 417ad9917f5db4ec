package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
)

func newCorpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus",
		Short: "List the corpus documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\tVOLUME\tCHAPTER")
			for _, d := range corpus.Default().All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Source(), d.Volume(), d.Chapter())
			}
			return tw.Flush()
		},
	}
}
