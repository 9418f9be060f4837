package llm

import (
	"context"
	"fmt"
)

// New creates a client for the configured provider
func New(ctx context.Context, config Config) (Client, error) {
	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config)
	case ProviderHuggingFace:
		return NewHuggingFaceClient(config)
	case ProviderAnthropic:
		return NewAnthropicClient(config)
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	}
	return nil, fmt.Errorf("unsupported provider: %q", config.Provider)
}
