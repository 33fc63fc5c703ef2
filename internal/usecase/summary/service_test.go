package summary

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	text  string
	err   error
	calls int
}

func (p *stubProvider) GenerateSummary(ctx context.Context, transcript, instructions string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func TestSummarize_NilProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	got, err := svc.Summarize(context.Background(), "We discussed the quarterly roadmap.", "")

	require.NoError(t, err)
	assert.Equal(t, "Summary:\n• We discussed the quarterly roadmap", got)
}

func TestSummarize_ProviderTextReturnedVerbatim(t *testing.T) {
	provider := &stubProvider{text: "  model output, untouched  "}
	svc := NewService(provider, zap.NewNop())

	got, err := svc.Summarize(context.Background(), "We discussed the quarterly roadmap.", "Be brief")

	require.NoError(t, err)
	assert.Equal(t, "  model output, untouched  ", got)
	assert.Equal(t, 1, provider.calls)
}

func TestSummarize_ProviderErrorFallsBack(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("upstream unavailable")}
	svc := NewService(provider, zap.NewNop())

	got, err := svc.Summarize(context.Background(), "We discussed the quarterly roadmap.", "Focus on risks")

	require.NoError(t, err)
	assert.Equal(t, "Custom Instructions: Focus on risks\n\nSummary:\n• We discussed the quarterly roadmap", got)
	// Bounded retry before the fallback engages.
	assert.Equal(t, 3, provider.calls)
}
