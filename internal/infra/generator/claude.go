package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Claude implements the Generator interface using Anthropic's Claude API.
// It is an alternative to the default Mistral adapter, selected via
// GENERATOR_PROVIDER=claude.
type Claude struct {
	client          anthropic.Client
	config          *Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a new Claude generator with the given API key.
func NewClaude(apiKey string, config *Config) *Claude {
	slog.Info("Initialized Claude generator",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Generate sends the system instruction and rendered prompt to the Claude API
// and returns the generated text. Same contract as the Mistral adapter:
// detached from caller cancellation, single attempt, one GenerationError on
// any failure.
func (c *Claude) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.config.Timeout)
	defer cancel()

	slog.InfoContext(ctx, "Starting generation",
		slog.String("provider", "claude"),
		slog.String("model", c.config.Model),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		c.metricsRecorder.RecordFailure("claude")
		genErr := mapClaudeError(err)
		slog.ErrorContext(ctx, "Generation failed",
			slog.String("provider", "claude"),
			slog.Duration("duration", duration),
			slog.Int("upstream_status", genErr.Status),
			slog.String("error", genErr.Message))
		return "", genErr
	}

	if len(message.Content) == 0 {
		c.metricsRecorder.RecordFailure("claude")
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.Duration("duration", duration))
		return "", &GenerationError{
			Provider: "claude",
			Message:  "empty content in response",
		}
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		c.metricsRecorder.RecordFailure("claude")
		return "", &GenerationError{
			Provider: "claude",
			Message:  "unexpected response content type",
		}
	}

	text := textBlock.Text

	slog.InfoContext(ctx, "Generation completed",
		slog.String("provider", "claude"),
		slog.Int("text_length", len(text)),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordDuration("claude", duration)

	return text, nil
}

// mapClaudeError converts SDK errors into a GenerationError carrying the
// upstream status and message verbatim.
func mapClaudeError(err error) *GenerationError {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &GenerationError{
			Provider: "claude",
			Status:   apiErr.StatusCode,
			Message:  apiErr.Error(),
			Err:      err,
		}
	}

	return &GenerationError{
		Provider: "claude",
		Message:  err.Error(),
		Err:      err,
	}
}
