package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionsClient talks to an OpenAI-compatible /v1/completions endpoint
// (vLLM, llama.cpp server, TGI in OpenAI mode).
type CompletionsClient struct {
	cfg    Config
	client *http.Client
}

type completionsRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	N           int     `json:"n"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k,omitempty"`
}

type completionsResponse struct {
	Choices []struct {
		Text  string `json:"text"`
		Index int    `json:"index"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewCompletionsClient(cfg Config) (*CompletionsClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingURL
	}
	def := DefaultConfig()
	if cfg.Batch <= 0 {
		cfg.Batch = 1
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return &CompletionsClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Generate requests cfg.Batch samples for prompt. With EchoPrompt the prompt
// is prefixed to every sample, the shape a causal LM decode returns.
func (c *CompletionsClient) Generate(ctx context.Context, prompt string) ([]string, error) {
	body, err := json.Marshal(completionsRequest{
		Model:       c.cfg.Model,
		Prompt:      prompt,
		N:           c.cfg.Batch,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		TopK:        c.cfg.TopK,
	})
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	var resp completionsResponse
	if err := c.doRequestWithRetry(ctx, c.cfg.BaseURL+"/v1/completions", body, headers, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("oracle: completions error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	out := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		text := choice.Text
		if c.cfg.EchoPrompt {
			text = prompt + text
		}
		out = append(out, text)
	}
	return out, nil
}

func (c *CompletionsClient) doRequestWithRetry(ctx context.Context, url string, body []byte, headers map[string]string, result any) error {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("oracle: HTTP %d: %s", resp.StatusCode, string(respBody))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("oracle: HTTP %d: %s", resp.StatusCode, string(respBody))
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("oracle: decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("oracle: request failed after %d retries: %w", c.cfg.Retries, lastErr)
}
