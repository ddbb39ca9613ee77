package ai

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"smol_dev/internal/types"
)

// TextGenerator turns a system and a user instruction into generated text.
// Calls are independent; no conversation state is carried between them.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// OpenAIClient is a TextGenerator backed by the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	config types.ModelConfig
}

// NewOpenAIClient creates a client for the given model settings. baseURL may
// point at any OpenAI compatible endpoint; empty uses the OpenAI default.
func NewOpenAIClient(apiKey, baseURL string, cfg types.ModelConfig) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Generate sends one chat completion request.
func (c *OpenAIClient) Generate(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		TopP:        c.config.TopP,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &GenerationError{Model: c.config.Model, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", &GenerationError{Model: c.config.Model, Err: errEmptyResponse}
	}

	return resp.Choices[0].Message.Content, nil
}
