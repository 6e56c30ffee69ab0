package oracle

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaName identifies the evaluation schema for structured
// output APIs.
const resultSchemaName = "math-evaluation"

// resultSchemaDef is the JSON Schema every LLM oracle response must
// satisfy.
var resultSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"result": map[string]any{
			"type":        "string",
			"description": "The canonical result expression, plain text, no prose.",
		},
	},
	"required":             []any{"result"},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// parseResult validates raw LLM output against the result schema and
// extracts the expression.
func parseResult(raw json.RawMessage) (string, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ErrInvalidResult{Content: string(raw), Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := resultSchema()
	if err != nil {
		return "", &ErrInvalidResult{Content: string(raw), Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return "", &ErrInvalidResult{Content: string(raw), Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	obj := parsed.(map[string]any)
	result, _ := obj["result"].(string)
	result = strings.TrimSpace(result)
	if result == "" {
		return "", &ErrInvalidResult{Content: string(raw), Err: fmt.Errorf("empty result field")}
	}
	return result, nil
}

func resultSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(resultSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		schemaURL := fmt.Sprintf("schema://%s.json", resultSchemaName)
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

const evalSystemPrompt = `You are a symbolic mathematics engine. Evaluate the requested operation on the given expression and respond with JSON only: {"result": "<canonical expression>"}. Use plain notation (x^2, not LaTeX), no commentary, no steps.`

// evalPrompt renders the user message for one evaluation.
func evalPrompt(op Operation, expression string) string {
	return fmt.Sprintf("Operation: %s\nExpression: %s", op, expression)
}
