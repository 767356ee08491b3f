package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

// Summarizer produces a short summary for note content
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenRouterClient calls the OpenRouter chat completions API
type OpenRouterClient struct {
	URL    string
	APIKey string
	Model  string
	Client *http.Client
}

func NewSummarizer() *OpenRouterClient {
	return &OpenRouterClient{
		URL:    viper.GetString("ai.url"),
		APIKey: viper.GetString("ai.api_key"),
		Model:  viper.GetString("ai.model"),
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenRouterClient) Summarize(ctx context.Context, content string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: o.Model,
		Messages: []chatMessage{{
			Role:    "user",
			Content: "Summarize the following content concisely in about 60 words:\n\n" + content,
		}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary request failed, %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var data chatResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("failed to decode summary response, %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if data.Error != nil {
			return "", fmt.Errorf("summary API error: %s", data.Error.Message)
		}

		return "", fmt.Errorf("summary API error: %s", resp.Status)
	}

	if len(data.Choices) == 0 {
		return "", fmt.Errorf("summary response contained no choices")
	}

	return data.Choices[0].Message.Content, nil
}
