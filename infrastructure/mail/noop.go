package mail

import (
	"context"

	"taskhub/pkg/logger"
)

// NoopMailer logs instead of sending. Used in development when SMTP is not
// configured.
type NoopMailer struct{}

func (NoopMailer) Send(ctx context.Context, to, subject, body string) error {
	logger.Info("Mail suppressed (no SMTP configured)", "to", to, "subject", subject)
	return nil
}
