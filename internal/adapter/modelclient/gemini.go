package modelclient

import (
	"context"
	"fmt"
	"time"

	"github.com/loismiguel15/backendgemini/internal/config"
	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements domain.TextGenerator against the Gemini API,
// trying an ordered fallback chain of model identifiers. Only transport and
// service failures move the chain forward; whatever text a model returns is
// handed back as-is.
type GeminiGenerator struct {
	llm     llms.Model
	models  []string
	timeout time.Duration
}

// NewGeminiGenerator creates a new GeminiGenerator instance
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("at least one model identifier is required")
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Models[0]),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		llm:     client,
		models:  cfg.Models,
		timeout: cfg.Timeout,
	}, nil
}

// Generate tries each configured model identifier in order and returns the
// first raw response text. When every identifier fails it returns a
// ModelUnavailableError wrapping the last failure.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	var lastErr error
	for _, model := range g.models {
		out, err := g.call(ctx, model, prompt)
		if err != nil {
			l.Warn("Model attempt failed, trying next in chain",
				zap.String("model", model),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		l.Debug("Model attempt succeeded",
			zap.String("model", model),
			zap.Int("response_bytes", len(out)),
		)
		return out, nil
	}

	return "", domain.NewModelUnavailableError(lastErr)
}

func (g *GeminiGenerator) call(ctx context.Context, model, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(attemptCtx, g.llm, prompt,
		llms.WithModel(model),
		llms.WithTemperature(0.4),
	)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", model, err)
	}
	return out, nil
}

// Static assertion to ensure GeminiGenerator implements TextGenerator
var _ domain.TextGenerator = (*GeminiGenerator)(nil)
