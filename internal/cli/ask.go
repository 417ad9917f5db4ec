package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	"github.com/kailas-cloud/filacolia/internal/domain/footnote"
	"github.com/kailas-cloud/filacolia/internal/usecase/chat"
	"github.com/kailas-cloud/filacolia/internal/usecase/rank"
)

// MoreDetailsHint follows short answers.
const MoreDetailsHint = "(use --full para ver todos os trechos)"

func newAskCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "ask [words...]",
		Short: "Ask a question about the Filocalia",
		Long: `Ask ranks the Filocalia corpus against the question and prints the answer.

Examples:
  filacolia-cli ask oração do coração
  filacolia-cli ask "amor ao próximo" --full`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mode.Short
			if full {
				m = mode.Full
			}

			svc := chat.New(rank.New(corpus.Default()), nil)
			a, err := svc.Answer(cmd.Context(), []chat.Message{
				{Role: "user", Content: strings.Join(args, " ")},
			}, m)
			if err != nil {
				return fmt.Errorf("answer: %w", err)
			}

			out := cmd.OutOrStdout()
			content, refs := footnote.Format(a.Content())
			fmt.Fprintln(out, strings.TrimRight(content, "\n"))

			if len(refs) > 0 {
				fmt.Fprintln(out)
				for i, ref := range refs {
					fmt.Fprintf(out, "[%d] %s\n", i+1, ref)
				}
			}
			if a.HasMoreDetails() {
				fmt.Fprintln(out)
				fmt.Fprintln(out, MoreDetailsHint)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "f", false, "print every relevant passage")

	return cmd
}
