package extract

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models the extractor needs
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiExtractor asks Google's Gemini API for action items
type GeminiExtractor struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// GeminiConfig configuration for the Gemini extractor
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewGemini creates a new Gemini extractor
func NewGemini(ctx context.Context, config GeminiConfig) (*GeminiExtractor, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if config.Model == "" {
		config.Model = "gemini-2.0-flash"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiExtractor{
		models:  client.Models,
		model:   config.Model,
		timeout: config.Timeout,
	}, nil
}

// Extract asks for a JSON reply and parses the items
func (e *GeminiExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.models.GenerateContent(ctx, e.model,
		genai.Text(buildPrompt(text)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	return ParseItems(resp.Text())
}

// Name returns the extractor name
func (e *GeminiExtractor) Name() string {
	return fmt.Sprintf("gemini:%s", e.model)
}
