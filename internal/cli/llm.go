package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/filacolia/internal/config"
	openaiProbe "github.com/kailas-cloud/filacolia/internal/transport/openai"
)

// RuntimeConfig is the file written by "llm --write-config".
type RuntimeConfig struct {
	OllamaModel string `json:"ollamaModel"`
	InstalledAt string `json:"installedAt"`
}

func newLLMCmd() *cobra.Command {
	var (
		baseURL     string
		apiKey      string
		models      []string
		writeConfig string
		smoke       bool
	)

	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Check the local language-model runtime",
		Long: `llm lists the models installed in the local OpenAI-compatible runtime
(Ollama by default) and selects the first one of the preferred list.

Examples:
  filacolia-cli llm
  filacolia-cli llm --write-config ollama-config.json
  filacolia-cli llm --model mistral:7b --smoke`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			llmCfg, err := llmConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				llmCfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("api-key") {
				llmCfg.APIKey = apiKey
			}
			if cmd.Flags().Changed("model") {
				llmCfg.Models = models
			}

			probe := openaiProbe.NewProbe(&openaiProbe.Config{
				APIKey:  llmCfg.APIKey,
				BaseURL: llmCfg.BaseURL,
				Models:  llmCfg.Models,
			})

			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			installed, err := probe.InstalledModels(ctx)
			if err != nil {
				return fmt.Errorf("runtime at %s: %w", llmCfg.BaseURL, err)
			}
			fmt.Fprintf(out, "Modelos instalados: %d\n", len(installed))
			for _, id := range installed {
				fmt.Fprintf(out, "  - %s\n", id)
			}

			model, err := probe.Select(installed)
			if err != nil {
				return fmt.Errorf("select model: %w", err)
			}
			fmt.Fprintf(out, "Modelo selecionado: %s\n", model)

			if smoke {
				reply, err := probe.Ask(ctx, model, openaiProbe.SmokePrompt)
				if err != nil {
					return fmt.Errorf("smoke test: %w", err)
				}
				fmt.Fprintf(out, "Resposta: %s\n", reply)
			}

			if writeConfig != "" {
				if err := writeRuntimeConfig(writeConfig, model, time.Now()); err != nil {
					return err
				}
				fmt.Fprintf(out, "Configuração salva em %s\n", writeConfig)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "runtime OpenAI-compatible base URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "runtime API key")
	cmd.Flags().StringSliceVarP(&models, "model", "m", nil, "preferred models, best first")
	cmd.Flags().StringVarP(&writeConfig, "write-config", "w", "", "write the selected model to this JSON file")
	cmd.Flags().BoolVar(&smoke, "smoke", false, "ask the selected model a test question")

	return cmd
}

// llmConfig returns the runtime settings of the --config file, or the
// defaults when no file is given.
func llmConfig(cmd *cobra.Command) (config.LLMConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var cfg config.Config
		cfg.ApplyDefaults()
		return cfg.LLM, nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return config.LLMConfig{}, err
	}
	return cfg.LLM, nil
}

func writeRuntimeConfig(path, model string, now time.Time) error {
	data, err := json.MarshalIndent(RuntimeConfig{
		OllamaModel: model,
		InstalledAt: now.UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal runtime config: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
