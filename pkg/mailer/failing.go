package mailer

import "context"

// FailingSender is wired at startup when the delivery credential is present
// but malformed. Every send reports the configuration error so the Share
// operation surfaces a failure instead of silently simulating delivery.
type FailingSender struct {
	err error
}

// NewFailingSender creates a sender that always fails with err.
func NewFailingSender(err error) *FailingSender {
	return &FailingSender{err: err}
}

// Send always returns the configuration error.
func (s *FailingSender) Send(ctx context.Context, msg Message) error {
	return s.err
}
