package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// GeminiOracle evaluates expressions through the Gemini SDK with a
// JSON response schema.
type GeminiOracle struct {
	client *genai.Client
	model  string
}

func NewGeminiOracle(ctx context.Context, cfg GeminiConfig) (*GeminiOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiOracle{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (o *GeminiOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens:  256,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"result": {
					Type:        genai.TypeString,
					Description: "The canonical result expression, plain text, no prose.",
				},
			},
			Required: []string{"result"},
		},
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: evalSystemPrompt}},
		},
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: evalPrompt(op, expression)}},
		},
	}

	result, err := o.client.Models.GenerateContent(ctx, o.model, contents, config)
	if err != nil {
		return "", mapGeminiError(err)
	}
	return parseResult(json.RawMessage(result.Text()))
}

func (o *GeminiOracle) Name() string { return "gemini:" + o.model }

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrUnavailable{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}
