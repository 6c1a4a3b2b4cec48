package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface abstracts the text-generation provider so services
// and tests never touch a vendor SDK directly.
type CompletionClientInterface interface {
	// Complete sends one prompt pair to the given model and returns the plain
	// text it produced. A blank completion is an error (ErrEmptyCompletion),
	// a transport/auth/quota failure wraps ErrUpstream.
	Complete(ctx context.Context, model, systemPrompt, userPrompt string, maxTokens int) (string, error)
	// Models returns the fallback chain, most preferred first.
	Models() []string
	Provider() string
	Close() error
}

// NewCompletionClient creates an OpenAI or Gemini client based on config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
