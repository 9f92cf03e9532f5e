package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"shop-assistant-be/pkg/llm"
)

// Provider retries a wrapped backend with exponential backoff.
// Empty responses, client-side API errors and caller cancellation are not retried.
type Provider struct {
	next        llm.LLMProvider
	maxAttempts uint
	initial     time.Duration
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(next llm.LLMProvider, maxAttempts int, initialInterval time.Duration) *Provider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if initialInterval <= 0 {
		initialInterval = 200 * time.Millisecond
	}
	return &Provider{
		next:        next,
		maxAttempts: uint(maxAttempts),
		initial:     initialInterval,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.do(ctx, func() (string, error) {
		return p.next.Chat(ctx, history, options...)
	})
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.do(ctx, func() (string, error) {
		return p.next.Generate(ctx, prompt, options...)
	})
}

func (p *Provider) do(ctx context.Context, call func() (string, error)) (string, error) {
	if p.maxAttempts == 1 {
		return call()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initial

	return backoff.Retry(ctx, func() (string, error) {
		out, err := call()
		if err == nil {
			return out, nil
		}
		var statusErr *llm.StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return "", backoff.Permanent(err)
		}
		if errors.Is(err, llm.ErrEmptyResponse) || ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}
		return "", err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(p.maxAttempts))
}
