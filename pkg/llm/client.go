// Package llm provides the completion port the workflow nodes call and
// its production implementation over an OpenAI-compatible API.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// Request is one completion call: a fixed system prompt, a JSON user
// payload, and per-call generation parameters. Model may be empty to use
// the client default.
type Request struct {
	System      string
	User        string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Completer is the completion port. Implementations return the raw
// completion text; callers extract and validate the JSON object.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client is the OpenAI-compatible Completer used in production. A single
// Client is safe for concurrent use; every request carries its own
// timeout.
type Client struct {
	client       openai.Client
	defaultModel string
}

// NewClient builds a Client for the given API key, base URL (empty for
// the OpenAI default), and default model.
func NewClient(apiKey, baseURL, defaultModel string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/"))
	}
	return &Client{
		client:       openai.NewClient(opts...),
		defaultModel: defaultModel,
	}
}

// Complete performs a single chat completion in JSON mode and returns
// the completion text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: param.NewOpt(req.Temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	started := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("LLM completion finished",
		"model", model,
		"duration_ms", time.Since(started).Milliseconds(),
		"response_chars", len(content))
	return content, nil
}
