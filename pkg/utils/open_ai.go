package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Fallback chain tried in order when no explicit model is configured.
var openAIFallbackModels = []string{"gpt-5", "gpt-5-mini", "gpt-4.1"}

type OpenAICompletionClient struct {
	client *openai.Client
	models []string
}

// NewOpenAICompletionClient builds a client. A non-empty model is tried first,
// ahead of the fallback chain.
func NewOpenAICompletionClient(apiKey, model string) *OpenAICompletionClient {
	models := openAIFallbackModels
	if model != "" {
		models = append([]string{model}, openAIFallbackModels...)
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		models: models,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		// max_tokens is rejected by gpt-5 class models; the API wants
		// max_completion_tokens now.
		MaxCompletionTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: model %s: %v", ErrUpstream, model, err)
	}
	text := extractChatText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: model %s", ErrEmptyCompletion, model)
	}
	return text, nil
}

// extractChatText pulls the assistant text out of a completion, tolerating
// responses with no choices or blank content.
func extractChatText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func (c *OpenAICompletionClient) Models() []string { return c.models }

func (c *OpenAICompletionClient) Provider() string { return "openai" }

func (c *OpenAICompletionClient) Close() error { return nil }
