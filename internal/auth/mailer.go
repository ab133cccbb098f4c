package auth

import (
	"context"

	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

// Mailer delivers the password-reset link to the requester.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, resetURL string) error
}

// LogMailer writes reset links to the structured log instead of sending
// mail. Used in development and as the default until an SMTP provider
// is wired in deployment config.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	if m.log != nil {
		ctx = m.log.WithFields(ctx, map[string]any{
			"email":     email,
			"reset_url": resetURL,
		})
		m.log.Info(ctx, "mailer.password_reset")
	}
	return nil
}
