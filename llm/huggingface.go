package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultHuggingFaceURL is the serverless inference endpoint
const DefaultHuggingFaceURL = "https://api-inference.huggingface.co"

// HuggingFaceClient calls the Hugging Face text-generation inference API
type HuggingFaceClient struct {
	httpClient *http.Client
	config     Config
}

type textGenerationRequest struct {
	Inputs     string                   `json:"inputs"`
	Parameters textGenerationParameters `json:"parameters"`
}

type textGenerationParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens,omitempty"`
	Temperature       float64 `json:"temperature,omitempty"`
	TopP              float64 `json:"top_p,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
	ReturnFullText    bool    `json:"return_full_text"`
}

type textGenerationOutput struct {
	GeneratedText string `json:"generated_text"`
}

type textGenerationError struct {
	Error string `json:"error"`
}

// NewHuggingFaceClient creates a text-generation client
func NewHuggingFaceClient(config Config) (*HuggingFaceClient, error) {
	config.Provider = ProviderHuggingFace
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultHuggingFaceURL
	}
	return &HuggingFaceClient{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}, nil
}

// Name returns the provider identifier
func (c *HuggingFaceClient) Name() string {
	return string(ProviderHuggingFace)
}

// Generate posts the prompt to the model's text-generation endpoint
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string, options Options) (string, error) {
	payload, err := json.Marshal(&textGenerationRequest{
		Inputs: prompt,
		Parameters: textGenerationParameters{
			MaxNewTokens:      options.MaxTokens,
			Temperature:       options.Temperature,
			TopP:              options.TopP,
			RepetitionPenalty: options.RepetitionPenalty,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	URL := strings.TrimRight(c.config.BaseURL, "/") + "/models/" + options.model(c.config.Model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", transportError(c.Name(), err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", transportError(c.Name(), err)
	}
	if response.StatusCode != http.StatusOK {
		message := strings.TrimSpace(string(body))
		apiErr := &textGenerationError{}
		if json.Unmarshal(body, apiErr) == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		return "", remoteError(c.Name(), classifyStatus(response.StatusCode), fmt.Errorf("status %d: %s", response.StatusCode, message))
	}

	var outputs []textGenerationOutput
	if err = json.Unmarshal(body, &outputs); err != nil {
		var single textGenerationOutput
		if json.Unmarshal(body, &single) != nil {
			return "", remoteError(c.Name(), ErrRemote, fmt.Errorf("failed to decode response: %w", err))
		}
		outputs = []textGenerationOutput{single}
	}
	var fragments []string
	for _, output := range outputs {
		fragments = append(fragments, output.GeneratedText)
	}
	return joinText(c.Name(), fragments)
}
