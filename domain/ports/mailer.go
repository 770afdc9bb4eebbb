package ports

import "context"

// Mailer is the outbound mail transport. Send is synchronous; a returned error
// is a recoverable signal, callers decide whether to surface or swallow it.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
