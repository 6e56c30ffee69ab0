package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// AnthropicOracle evaluates expressions through the Anthropic SDK with
// structured JSON output.
type AnthropicOracle struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicOracle(cfg AnthropicConfig) (*AnthropicOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &AnthropicOracle{
		client: &client,
		model:  resolveModel(cfg.Model, anthropicModels),
	}, nil
}

func (o *AnthropicOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(o.model),
		MaxTokens: 256,
		System: []anthropic.TextBlockParam{
			{Text: evalSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(evalPrompt(op, expression)),
				},
			},
		},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: resultSchemaDef,
			},
		},
	}

	msg, err := o.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapAnthropicError(err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return parseResult(json.RawMessage(block.Text))
		}
	}
	return "", &ErrInvalidResult{Err: fmt.Errorf("no text content in Anthropic response")}
}

func (o *AnthropicOracle) Name() string { return "anthropic:" + o.model }

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.StatusCode >= 500:
			return &ErrUnavailable{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID;
// unmapped names pass through as direct IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
