package oracle

import "time"

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderEcho   Provider = "echo"
)

// Config carries the oracle transport and sampling settings.
type Config struct {
	Provider    Provider
	BaseURL     string
	Model       string
	APIKey      string
	Batch       int
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
	EchoPrompt  bool
	Timeout     time.Duration
	Retries     int
	RetryDelay  time.Duration
}

// DefaultConfig mirrors the sampling the mutation model was tuned with.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderOpenAI,
		BaseURL:     "http://127.0.0.1:8000",
		Model:       "llama-2-7b-structured-hex-mutator",
		Batch:       1,
		MaxTokens:   400,
		Temperature: 1.25,
		TopP:        0.92,
		TopK:        50,
		EchoPrompt:  true,
		Timeout:     120 * time.Second,
		Retries:     3,
		RetryDelay:  2 * time.Second,
	}
}
