package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var geminiFallbackModels = []string{"gemini-1.5-flash", "gemini-1.5-pro"}

// GeminiCompletionClient implements CompletionClientInterface on Google's
// Gemini models, for deployments without an OpenAI key.
type GeminiCompletionClient struct {
	client *genai.Client
	models []string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	models := geminiFallbackModels
	if model != "" {
		models = append([]string{model}, geminiFallbackModels...)
	}
	return &GeminiCompletionClient{client: client, models: models}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m := c.client.GenerativeModel(model)
	m.SetTemperature(0.3)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(int32(maxTokens))

	// Gemini has no separate system role here, so the instruction rides in
	// front of the user prompt.
	prompt := systemPrompt + "\n\n" + userPrompt

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: model %s: %v", ErrUpstream, model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: model %s", ErrEmptyCompletion, model)
	}
	text := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if text == "" {
		return "", fmt.Errorf("%w: model %s", ErrEmptyCompletion, model)
	}
	return text, nil
}

func (c *GeminiCompletionClient) Models() []string { return c.models }

func (c *GeminiCompletionClient) Provider() string { return "gemini" }

func (c *GeminiCompletionClient) Close() error { return c.client.Close() }
