package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPDoer abstracts HTTP clients used by generators.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ChatClient calls an OpenAI-compatible chat-completions endpoint, the
// interface exposed by local inference servers (llama.cpp, mlx_lm.server)
// hosting the fine-tuned model.
type ChatClient struct {
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Client      HTTPDoer
}

// NewChatClient constructs a chat generator with explicit settings.
func NewChatClient(baseURL, model string, temperature float64, maxTokens int, client HTTPDoer) (*ChatClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ChatClient{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Client:      client,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the instruction to the inference server and returns the
// assistant text verbatim, trimmed of surrounding whitespace only.
func (c *ChatClient) Generate(ctx context.Context, instruction string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: instruction},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("inference server error: %s", strings.TrimSpace(string(body)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("inference server returned no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
