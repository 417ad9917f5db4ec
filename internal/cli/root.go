// Package cli implements the filacolia-cli commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the filacolia-cli command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "filacolia-cli",
		Short: "Filacolia - perguntas sobre a Filocalia no terminal",
		Long: `filacolia-cli answers questions from the Filocalia corpus with the same
ranking and composition as the chat server, and inspects the local
language-model runtime.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to a filacolia YAML config file")

	root.AddCommand(newAskCmd())
	root.AddCommand(newCorpusCmd())
	root.AddCommand(newLLMCmd())

	return root
}
