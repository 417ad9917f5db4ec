package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/domain"
)

// SmokePrompt is the question sent to verify that a model answers.
const SmokePrompt = "Responda em português: O que é a oração do coração?"

// Probe inspects a local language-model runtime through its
// OpenAI-compatible API (e.g. Ollama at http://localhost:11434/v1).
type Probe struct {
	client *openai.Client
	models []string
	logger *zap.Logger
}

// Config holds the runtime connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Models  []string // preferred models, best first
	Logger  *zap.Logger
}

// NewProbe creates a runtime probe.
func NewProbe(cfg *Config) *Probe {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Probe{
		client: openai.NewClientWithConfig(clientCfg),
		models: append([]string(nil), cfg.Models...),
		logger: logger,
	}
}

// InstalledModels returns the identifiers of the models the runtime serves.
func (p *Probe) InstalledModels(ctx context.Context) ([]string, error) {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, parseAPIError(err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// SelectModel queries the runtime and returns the first preferred model that is installed.
func (p *Probe) SelectModel(ctx context.Context) (string, error) {
	installed, err := p.InstalledModels(ctx)
	if err != nil {
		return "", err
	}
	return p.Select(installed)
}

// Select returns the first preferred model found in installed.
// Model names match with or without the ":latest" tag.
func (p *Probe) Select(installed []string) (string, error) {
	have := make(map[string]struct{}, len(installed))
	for _, id := range installed {
		have[id] = struct{}{}
		have[strings.TrimSuffix(id, ":latest")] = struct{}{}
	}

	for _, m := range p.models {
		if _, ok := have[m]; ok {
			return m, nil
		}
	}

	p.logger.Debug("No preferred model installed",
		zap.Strings("preferred", p.models),
		zap.Strings("installed", installed),
	)
	return "", fmt.Errorf("checked %d preferred models: %w", len(p.models), domain.ErrModelNotInstalled)
}

// Ask sends prompt to model and returns the reply text.
func (p *Probe) Ask(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("model %s returned no answer: %w", model, domain.ErrRuntimeUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

// HealthCheck verifies that the runtime responds and serves a preferred model.
func (p *Probe) HealthCheck(ctx context.Context) error {
	if _, err := p.SelectModel(ctx); err != nil {
		return fmt.Errorf("llm health check: %w", err)
	}
	return nil
}

// parseAPIError wraps runtime errors with domain.ErrRuntimeUnavailable.
func parseAPIError(err error) error {
	wrap := domain.ErrRuntimeUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("runtime API error %d: %s: %w",
			reqErr.HTTPStatusCode, strings.TrimSpace(string(reqErr.Body)), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("runtime API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("runtime request failed: %v: %w", err, wrap)
}
