package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient generates text with OpenAI chat completions
type OpenAIClient struct {
	client *openai.Client
	config Config
}

// NewOpenAIClient creates a client for the OpenAI chat completions API
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	config.Provider = ProviderOpenAI
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}
	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, config: config}, nil
}

// Name returns the provider identifier
func (c *OpenAIClient) Name() string {
	return string(ProviderOpenAI)
}

// Generate sends the prompt as a single user message
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, options Options) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(options.model(c.config.Model)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature > 0 {
		params.Temperature = openai.Float(options.Temperature)
	}
	if options.TopP > 0 {
		params.TopP = openai.Float(options.TopP)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", remoteError(c.Name(), classifyStatus(apiErr.StatusCode), err)
		}
		return "", transportError(c.Name(), err)
	}
	var fragments []string
	for _, choice := range completion.Choices {
		fragments = append(fragments, choice.Message.Content)
	}
	return joinText(c.Name(), fragments)
}
