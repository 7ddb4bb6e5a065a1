package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// OllamaExtractor asks a local Ollama server for action items
type OllamaExtractor struct {
	serverURL string
	model     string
	client    *http.Client
	logger    *slog.Logger
}

// OllamaConfig configuration for the Ollama extractor
type OllamaConfig struct {
	ServerURL string
	Model     string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewOllama creates a new Ollama extractor
func NewOllama(config OllamaConfig) *OllamaExtractor {
	if config.ServerURL == "" {
		config.ServerURL = "http://127.0.0.1:11434"
	}
	if config.Model == "" {
		config.Model = "llama3.1:8b"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second // local models can be slow on first load
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &OllamaExtractor{
		serverURL: config.ServerURL,
		model:     config.Model,
		logger:    config.Logger,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Format   string          `json:"format"`
	Stream   bool            `json:"stream"`
	Options  map[string]any  `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message *ollamaMessage `json:"message"`
}

// Extract sends text to /api/chat in JSON mode and parses the items
func (e *OllamaExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    e.model,
		Messages: []ollamaMessage{{Role: "user", Content: buildPrompt(text)}},
		Format:   "json",
		Stream:   false,
		Options:  map[string]any{"temperature": 0},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.serverURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if chatResp.Message == nil {
		return nil, fmt.Errorf("%w: response has no message", ErrMalformedResponse)
	}

	items, err := ParseItems(chatResp.Message.Content)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("ollama extraction completed",
		"model", e.model,
		"items", len(items),
		"elapsed", time.Since(startTime),
	)

	return items, nil
}

// Health checks that the Ollama server answers
func (e *OllamaExtractor) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.serverURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

// Name returns the extractor name
func (e *OllamaExtractor) Name() string {
	return fmt.Sprintf("ollama:%s", e.model)
}
