// Package mailer sends the transactional e-mails through Resend.
package mailer

import (
	"context"
	"strings"

	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"

	"github.com/resend/resend-go/v2"
)

var _ shared.Mailer = (*Resend)(nil)

type Resend struct {
	client *resend.Client
	from   string
}

// NewResend leaves the client nil when no API key is configured; Send then
// reports errs.ErrEmailNotConfigured.
func NewResend(cfg config.MailConfig) *Resend {
	m := &Resend{from: strings.TrimSpace(cfg.From)}
	if key := strings.TrimSpace(cfg.ResendAPIKey); key != "" {
		m.client = resend.NewClient(key)
	}
	return m
}

// NewResendWithClient is used by tests to point the client at a fake API.
func NewResendWithClient(client *resend.Client, from string) *Resend {
	return &Resend{client: client, from: from}
}

func (m *Resend) Send(ctx context.Context, email shared.Email) error {
	to := strings.TrimSpace(email.To)
	if m.client == nil || m.from == "" || to == "" {
		return errs.ErrEmailNotConfigured
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "resend send"), errs.ErrEmailProviderFailure)
	}
	return nil
}
