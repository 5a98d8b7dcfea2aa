package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/manyabajaj09/audience-assist/internal/config"
)

const classifyPrompt = `You are an assistant that classifies user messages for support tickets.
Respond ONLY in JSON format:
{
  "tag": "question" | "request" | "complaint" | "praise" | "other",
  "sentiment": "positive" | "neutral" | "negative",
  "priority": number (1 to 5)
}
Message: %q`

const replyPrompt = `Write a short, polite customer support reply to this message:
%q`

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewOpenAIClient constructs a client. The http.Client carries no timeout;
// callers bound each request through the context.
func NewOpenAIClient(cfg config.ClassifierConfig) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Classify asks the model for a tag/sentiment/priority triple.
func (c *OpenAIClient) Classify(ctx context.Context, content string) (*Result, error) {
	raw, err := c.complete(ctx, fmt.Sprintf(classifyPrompt, content), 100, 0.2)
	if err != nil {
		return nil, err
	}
	var result Result
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse classification: %w", err)
	}
	return &result, nil
}

// SuggestReply asks the model for a short support reply.
func (c *OpenAIClient) SuggestReply(ctx context.Context, content string) (string, error) {
	raw, err := c.complete(ctx, fmt.Sprintf(replyPrompt, content), 120, 0)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier endpoint returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
