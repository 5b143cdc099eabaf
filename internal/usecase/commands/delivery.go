package commands

import (
	"context"
	"log/slog"

	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/usecase/notify"
	"atlas-hotel/internal/usecase/shared"
)

const (
	ReasonSent            = "sent"
	ReasonMissingConfig   = "missing_email_config"
	ReasonProviderError   = "provider_error"
	ReasonEmailSendFailed = "email_send_failed"
)

// Recipients are the staff inboxes notified per flow.
type Recipients struct {
	Booking    string
	Contact    string
	Newsletter string
}

// Delivery reports the admin and customer e-mails of one submission. Reasons
// are empty when the message went out.
type Delivery struct {
	AdminSent    bool
	ClientSent   bool
	AdminReason  string
	ClientReason string
}

// Status is the admin reason, or "sent".
func (d Delivery) Status() string {
	if d.AdminReason != "" {
		return d.AdminReason
	}
	return ReasonSent
}

// DeliveryFailedError is returned when neither e-mail of a submission that
// requires one could be sent.
type DeliveryFailedError struct {
	Reason string
}

func (e *DeliveryFailedError) Error() string {
	return "email delivery failed: " + e.Reason
}

func (e *DeliveryFailedError) Is(target error) bool {
	return target == errs.ErrEmailDeliveryFailed
}

func reasonOf(err error) string {
	if errs.Is(err, errs.ErrEmailNotConfigured) {
		return ReasonMissingConfig
	}
	return ReasonProviderError
}

type postman struct {
	mailer  shared.Mailer
	metrics *metrics.Metrics
}

// deliver renders and sends one e-mail; a failure is logged and reported as
// a reason code, never returned.
func (p postman) deliver(ctx context.Context, template, to string, render func() (notify.Message, error)) (bool, string) {
	msg, err := render()
	if err == nil {
		err = p.mailer.Send(ctx, shared.Email{To: to, Subject: msg.Subject, HTML: msg.HTML})
	}
	if err != nil {
		reason := reasonOf(err)
		p.metrics.EmailDeliveries.WithLabelValues(template, reason).Inc()
		if reason == ReasonMissingConfig {
			slog.Debug("email skipped", "template", template, "reason", reason)
		} else {
			slog.Warn("email delivery failed", "template", template, "error", err.Error())
		}
		return false, reason
	}
	p.metrics.EmailDeliveries.WithLabelValues(template, ReasonSent).Inc()
	return true, ""
}

func (p postman) pair(ctx context.Context, name, adminTo, clientTo string, admin, client func() (notify.Message, error)) Delivery {
	var d Delivery
	d.AdminSent, d.AdminReason = p.deliver(ctx, name+"_admin", adminTo, admin)
	d.ClientSent, d.ClientReason = p.deliver(ctx, name+"_client", clientTo, client)
	return d
}

func publish(ctx context.Context, pub shared.EventPublisher, event shared.Event) {
	if err := pub.Publish(ctx, event); err != nil {
		slog.Warn("event publish failed", "topic", event.Topic, "reference", event.Reference, "error", err.Error())
	}
}
