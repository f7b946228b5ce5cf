// Package llm wraps the model providers behind a single interface. The
// engine treats providers as opaque functions from prompt to text; transport,
// retries and model choice live here and nowhere else.
package llm

import "context"

// Provider is the interface for all LLM providers.
type Provider interface {
	// GenerateResponse sends a prompt and returns the raw model output.
	// Options understood by all providers: "model" (string override) and
	// "response_format" ({"type": "json_object"} for JSON mode).
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// JSONMode is the options entry that asks a provider for a JSON response.
func JSONMode() map[string]interface{} {
	return map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
}
