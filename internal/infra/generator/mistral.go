package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Mistral implements the Generator interface against Mistral's
// chat-completion API, which speaks the OpenAI wire format.
type Mistral struct {
	client          *openai.Client
	config          *Config
	metricsRecorder MetricsRecorder
}

// NewMistral creates a new Mistral generator with the given API key.
func NewMistral(apiKey string, config *Config) *Mistral {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = config.BaseURL

	slog.Info("Initialized Mistral generator",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens),
		slog.String("base_url", config.BaseURL))

	return &Mistral{
		client:          openai.NewClientWithConfig(clientConfig),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Generate sends the system instruction and rendered prompt to the Mistral API
// and returns the generated text.
//
// The call is detached from the caller's cancellation: once issued it runs to
// completion (bounded by the configured timeout) even if the HTTP client
// disconnects. Failures of any kind surface as a single *GenerationError; this
// method never retries.
func (m *Mistral) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.config.Timeout)
	defer cancel()

	slog.InfoContext(ctx, "Starting generation",
		slog.String("provider", "mistral"),
		slog.String("model", m.config.Model),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: m.config.MaxTokens,
	})

	duration := time.Since(start)

	if err != nil {
		m.metricsRecorder.RecordFailure("mistral")
		genErr := mapMistralError(err)
		slog.ErrorContext(ctx, "Generation failed",
			slog.String("provider", "mistral"),
			slog.Duration("duration", duration),
			slog.Int("upstream_status", genErr.Status),
			slog.String("error", genErr.Message))
		return "", genErr
	}

	if len(resp.Choices) == 0 {
		m.metricsRecorder.RecordFailure("mistral")
		slog.ErrorContext(ctx, "Mistral API returned empty response",
			slog.Duration("duration", duration))
		return "", &GenerationError{
			Provider: "mistral",
			Message:  "empty choices in response",
		}
	}

	text := resp.Choices[0].Message.Content

	slog.InfoContext(ctx, "Generation completed",
		slog.String("provider", "mistral"),
		slog.Int("text_length", len(text)),
		slog.Duration("duration", duration))

	m.metricsRecorder.RecordDuration("mistral", duration)

	return text, nil
}

// mapMistralError converts client errors into a GenerationError carrying the
// upstream status and message verbatim.
func mapMistralError(err error) *GenerationError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &GenerationError{
			Provider: "mistral",
			Status:   apiErr.HTTPStatusCode,
			Message:  apiErr.Message,
			Err:      err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &GenerationError{
			Provider: "mistral",
			Status:   reqErr.HTTPStatusCode,
			Message:  reqErr.Error(),
			Err:      err,
		}
	}

	return &GenerationError{
		Provider: "mistral",
		Message:  err.Error(),
		Err:      err,
	}
}
