package llm

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// GeminiClient generates text with the Gemini API
type GeminiClient struct {
	client *genai.Client
	config Config
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, config Config) (*GeminiClient, error) {
	config.Provider = ProviderGemini
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, config: config}, nil
}

// Name returns the provider identifier
func (c *GeminiClient) Name() string {
	return string(ProviderGemini)
}

// Generate sends the prompt as a single user turn
func (c *GeminiClient) Generate(ctx context.Context, prompt string, options Options) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}
	generateConfig := &genai.GenerateContentConfig{}
	if options.MaxTokens > 0 {
		generateConfig.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.Temperature > 0 {
		generateConfig.Temperature = genai.Ptr(float32(options.Temperature))
	}
	if options.TopP > 0 {
		generateConfig.TopP = genai.Ptr(float32(options.TopP))
	}

	resp, err := c.client.Models.GenerateContent(ctx, options.model(c.config.Model),
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		generateConfig,
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", remoteError(c.Name(), classifyStatus(apiErr.Code), err)
		}
		return "", transportError(c.Name(), err)
	}
	var fragments []string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part != nil {
				fragments = append(fragments, part.Text)
			}
		}
	}
	return joinText(c.Name(), fragments)
}
