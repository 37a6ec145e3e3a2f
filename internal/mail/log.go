package mail

import (
	"context"
	"log/slog"

	"github.com/pkordes/trip-planner/internal/domain"
)

// LogMailer writes each email to a logger instead of sending it.
// Selected with MAIL_DRIVER=log.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer constructs a LogMailer that writes to log.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send never fails.
func (m *LogMailer) Send(ctx context.Context, email domain.Email) error {
	m.log.InfoContext(ctx, "email",
		"to_name", email.ToName,
		"to", email.ToAddress,
		"subject", email.Subject,
		"html", email.HTML,
	)
	return nil
}
