package share

import (
	"context"
	stdErrors "errors"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/summary-share/errors"
	"github.com/johnquangdev/summary-share/pkg/mailer"
)

// Input carries one share request.
type Input struct {
	Summary    string
	Recipients []string
	Subject    string
	Sender     string
}

// Service defines the share operation
type Service interface {
	Share(ctx context.Context, in Input) error
}

type service struct {
	sender         mailer.Sender
	defaultFrom    string
	defaultSubject string
	logger         *zap.Logger
}

// NewService constructs a share service around the configured sender.
func NewService(sender mailer.Sender, defaultFrom, defaultSubject string, logger *zap.Logger) Service {
	return &service{
		sender:         sender,
		defaultFrom:    defaultFrom,
		defaultSubject: defaultSubject,
		logger:         logger,
	}
}

// Share delivers the summary to each recipient sequentially and aborts on
// the first failure. Partial success is not reported; the failing recipient
// is logged only.
func (s *service) Share(ctx context.Context, in Input) error {
	if strings.TrimSpace(in.Summary) == "" {
		return errors.ErrInvalidShareRequest()
	}

	recipients := dedupeRecipients(in.Recipients)
	if len(recipients) == 0 {
		return errors.ErrInvalidShareRequest()
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = s.defaultSubject
	}
	from := strings.TrimSpace(in.Sender)
	if from == "" {
		from = s.defaultFrom
	}

	htmlBody := renderHTML(in.Summary)

	for _, rcpt := range recipients {
		msg := mailer.Message{
			From:    from,
			To:      rcpt,
			Subject: subject,
			HTML:    htmlBody,
			Text:    in.Summary,
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			if s.logger != nil {
				s.logger.Error("email delivery failed",
					zap.String("recipient", rcpt),
					zap.Error(err),
				)
			}
			var appErr errors.AppError
			if stdErrors.As(err, &appErr) {
				return appErr
			}
			return errors.ErrDeliveryFailed(err)
		}
	}

	if s.logger != nil {
		s.logger.Info("summary shared",
			zap.Int("recipients", len(recipients)),
			zap.String("subject", subject),
		)
	}
	return nil
}

// dedupeRecipients drops blank entries and duplicates, preserving
// first-seen order.
func dedupeRecipients(recipients []string) []string {
	seen := make(map[string]struct{}, len(recipients))
	out := make([]string, 0, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// renderHTML wraps the plain-text summary in a minimal HTML body.
func renderHTML(summary string) string {
	escaped := html.EscapeString(summary)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>\n")
	return "<div style=\"font-family: Arial, sans-serif; line-height: 1.6;\">" + escaped + "</div>"
}
