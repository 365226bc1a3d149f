package script

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"scriptviral/internal/domain"
)

type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// OpenAIGenerator produces script options through the chat completions API
// with JSON-object response formatting.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

const openAIDefaultModel = "gpt-4o-mini"

const openAISystemPrompt = "You write Indonesian-market social media marketing scripts. " +
	`Respond strictly with JSON matching this schema: {"scriptOptions":[{"durasi":string,"judul":string,"hook":string,"script":string,"cta":string,"caption":string,"hashtags":string}]}.`

func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	cfg := openai.DefaultConfig(strings.TrimSpace(opts.APIKey))
	if baseURL := strings.TrimRight(opts.BaseURL, "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (o *OpenAIGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildInstruction(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request: %v: %w", err, domain.ErrProviderFailure)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices: %w", domain.ErrProviderFailure)
	}
	return decodeResult(resp.Choices[0].Message.Content, req.OutputCount)
}

var _ Generator = (*OpenAIGenerator)(nil)
