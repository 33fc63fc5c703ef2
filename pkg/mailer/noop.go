package mailer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoopSender is the no-credential fallback. It records the intended delivery
// in the operational log and waits a fixed simulated delay before reporting
// success. It performs no real delivery.
type NoopSender struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewNoopSender creates a logged no-op sender.
func NewNoopSender(logger *zap.Logger, delay time.Duration) *NoopSender {
	return &NoopSender{logger: logger, delay: delay}
}

// Send logs the message and simulates delivery.
func (s *NoopSender) Send(ctx context.Context, msg Message) error {
	if s.logger != nil {
		s.logger.Info("📧 simulated email delivery",
			zap.String("delivery_id", uuid.NewString()),
			zap.String("from", msg.From),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.String("body", msg.Text),
		)
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
