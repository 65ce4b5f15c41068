// Package llm wraps the chat completion API used to grade commits
package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/logger"
)

const (
	// DefaultModel is the model used when none is configured
	DefaultModel = "gpt-4o-mini"
	// Temperature is fixed so grading stays stable across calls
	Temperature = 0.2
	// MaxTokens bounds the completion; a score needs only a few tokens
	MaxTokens = 10

	defaultTimeout = 30 * time.Second
)

// Options configures the client
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client sends single-turn prompts and returns the completion text
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a completion client. BaseURL may point at any
// OpenAI-compatible gateway.
func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the first choice's text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	logger.Debug("Chat completion received",
		zap.String("model", c.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return resp.Choices[0].Message.Content, nil
}
