package summary

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Provider generates a summary through an external completion API.
type Provider interface {
	GenerateSummary(ctx context.Context, transcript, instructions string) (string, error)
}

// Service defines the summarize operation
type Service interface {
	Summarize(ctx context.Context, transcript, customPrompt string) (string, error)
}

type service struct {
	provider Provider // nil when no completion credential is configured
	logger   *zap.Logger
}

// NewService constructs a summary service. Pass a nil provider to always use
// the local fallback.
func NewService(provider Provider, logger *zap.Logger) Service {
	return &service{provider: provider, logger: logger}
}

// Summarize returns a summary for the transcript. It never fails outward:
// any provider error is logged and replaced by the deterministic fallback.
// The caller is expected to have rejected empty transcripts already.
func (s *service) Summarize(ctx context.Context, transcript, customPrompt string) (string, error) {
	if s.provider == nil {
		return Fallback(transcript, customPrompt), nil
	}

	var result string
	generateFn := func() error {
		text, err := s.provider.GenerateSummary(ctx, transcript, customPrompt)
		if err != nil {
			return err
		}
		result = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second

	if err := backoff.Retry(generateFn, backoff.WithContext(backoff.WithMaxRetries(bo, 2), ctx)); err != nil {
		if s.logger != nil {
			s.logger.Warn("completion API failed, using local fallback",
				zap.Error(err),
			)
		}
		return Fallback(transcript, customPrompt), nil
	}

	return result, nil
}
