// Package oracle is the boundary to the generative mutation model.
//
// The coordinator only needs Generate: hand over a prompt, get back a small,
// oracle-sized batch of candidate texts.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse   = errors.New("oracle: empty response")
	ErrUnknownProvider = errors.New("oracle: unknown provider")
	ErrMissingURL      = errors.New("oracle: base url required")
)

// Oracle proposes new seed texts from a prompt. Batch size is oracle-determined.
type Oracle interface {
	Generate(ctx context.Context, prompt string) ([]string, error)
}

// Releaser is implemented by oracles holding per-round transient resources.
type Releaser interface {
	Release()
}

// Func adapts a plain function into an Oracle.
type Func func(ctx context.Context, prompt string) ([]string, error)

func (f Func) Generate(ctx context.Context, prompt string) ([]string, error) {
	return f(ctx, prompt)
}

// Echo returns the prompt verbatim Copies times. It is the dry-run oracle:
// every round re-emits the source seed.
type Echo struct {
	Copies int
}

func (e Echo) Generate(ctx context.Context, prompt string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := e.Copies
	if n <= 0 {
		n = 1
	}
	out := make([]string, n)
	for i := range out {
		out[i] = prompt
	}
	return out, nil
}

// New builds the oracle named by cfg.Provider.
func New(cfg Config) (Oracle, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(string(cfg.Provider)))) {
	case ProviderOpenAI:
		c, err := NewCompletionsClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderEcho:
		return Echo{Copies: cfg.Batch}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
