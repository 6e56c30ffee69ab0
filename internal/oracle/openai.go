package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL supports
// OpenAI-compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// OpenAIOracle evaluates expressions through the OpenAI chat API with
// a strict JSON schema response format.
type OpenAIOracle struct {
	client *openai.Client
	model  string
}

func NewOpenAIOracle(cfg OpenAIConfig) (*OpenAIOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIOracle{
		client: openai.NewClientWithConfig(config),
		model:  resolveModel(cfg.Model, openaiModels),
	}, nil
}

func (o *OpenAIOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	schemaBytes, err := json.Marshal(resultSchemaDef)
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: evalSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: evalPrompt(op, expression)},
		},
		MaxCompletionTokens: 256,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   resultSchemaName,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ErrInvalidResult{Err: fmt.Errorf("no choices in OpenAI response")}
	}
	return parseResult(json.RawMessage(resp.Choices[0].Message.Content))
}

func (o *OpenAIOracle) Name() string { return "openai:" + o.model }

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrUnavailable{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}
