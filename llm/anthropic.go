package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient generates text with the Anthropic messages API
type AnthropicClient struct {
	client *anthropic.Client
	config Config
}

// NewAnthropicClient creates a client for the Anthropic messages API
func NewAnthropicClient(config Config) (*AnthropicClient, error) {
	config.Provider = ProviderAnthropic
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
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{client: &client, config: config}, nil
}

// Name returns the provider identifier
func (c *AnthropicClient) Name() string {
	return string(ProviderAnthropic)
}

// Generate sends the prompt as a single user message
func (c *AnthropicClient) Generate(ctx context.Context, prompt string, options Options) (string, error) {
	maxTokens := options.MaxTokens
	if maxTokens <= 0 {
		maxTokens = ClassMaxTokens
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(options.model(c.config.Model)),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	// temperature and top_p are mutually exclusive on current models
	if options.Temperature > 0 {
		params.Temperature = anthropic.Float(options.Temperature)
	} else if options.TopP > 0 {
		params.TopP = anthropic.Float(options.TopP)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", remoteError(c.Name(), classifyStatus(apiErr.StatusCode), err)
		}
		return "", transportError(c.Name(), err)
	}
	var fragments []string
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			fragments = append(fragments, text.Text)
		}
	}
	return joinText(c.Name(), fragments)
}
