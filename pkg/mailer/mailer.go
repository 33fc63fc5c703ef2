// Package mailer provides email sending with pluggable providers.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/summary-share/pkg/config"
)

// resendKeyPrefix is the prefix Resend API keys are expected to carry.
const resendKeyPrefix = "re_"

// Message represents an email message to be sent.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string // Plain text fallback
}

// Sender is the interface for email providers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New selects a Sender once at startup based on configuration:
// no key configured selects the logged no-op sender, a well-formed key
// selects Resend, and a malformed key is a configuration error.
func New(cfg *config.MailConfig, logger *zap.Logger) (Sender, error) {
	if cfg.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY not configured; email sharing runs in simulation mode")
		return NewNoopSender(logger, cfg.SimulatedDelay), nil
	}
	if !strings.HasPrefix(cfg.ResendAPIKey, resendKeyPrefix) {
		return nil, fmt.Errorf("malformed resend api key: expected %q prefix", resendKeyPrefix)
	}
	return NewResendSender(cfg.ResendAPIKey), nil
}
