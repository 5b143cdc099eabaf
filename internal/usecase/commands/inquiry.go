package commands

//go:generate mockgen -source=inquiry.go -destination=../../../tests/mock/commands/inquiry.go -package=commandsmock

import (
	"context"
	"strings"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/pkg/ref"
	"atlas-hotel/internal/usecase/notify"
	"atlas-hotel/internal/usecase/shared"
)

type ContactRequest struct {
	Website string
	Name    string
	Email   string
	Message string
}

type NewsletterRequest struct {
	Website string
	Email   string
}

type TrackEventRequest struct {
	Event string
	Path  string
	Label string
}

type InquiryCommands interface {
	// SubmitContact fails with a *DeliveryFailedError when neither e-mail went out;
	// the message is stored regardless.
	SubmitContact(ctx context.Context, req ContactRequest) (*Delivery, error)
	Subscribe(ctx context.Context, req NewsletterRequest) (*Delivery, error)
	TrackEvent(ctx context.Context, req TrackEventRequest) error
}

type inquiryCommandsImpl struct {
	uow        shared.UnitOfWork
	refs       ref.Generator
	postman    postman
	publisher  shared.EventPublisher
	recipients Recipients
	metrics    *metrics.Metrics
	clock      clock.Clock
}

func NewInquiryCommands(
	uow shared.UnitOfWork,
	refs ref.Generator,
	mailer shared.Mailer,
	publisher shared.EventPublisher,
	recipients Recipients,
	m *metrics.Metrics,
	clk clock.Clock,
) InquiryCommands {
	return &inquiryCommandsImpl{
		uow:        uow,
		refs:       refs,
		postman:    postman{mailer: mailer, metrics: m},
		publisher:  publisher,
		recipients: recipients,
		metrics:    m,
		clock:      clk,
	}
}

func (uc *inquiryCommandsImpl) SubmitContact(ctx context.Context, req ContactRequest) (*Delivery, error) {
	if strings.TrimSpace(req.Website) != "" {
		return nil, errs.ErrSpamDetected
	}
	msg, err := contact.NewMessage(uc.refs.Next(ref.PrefixContact), req.Name, req.Email, req.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inquiries().CreateContact(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.Inquiries.WithLabelValues("contact").Inc()

	publish(ctx, uc.publisher, shared.Event{
		Topic:      shared.TopicContactReceived,
		Reference:  msg.ID,
		OccurredAt: msg.CreatedAt,
	})

	delivery := uc.postman.pair(ctx, "contact", uc.recipients.Contact, msg.Email,
		func() (notify.Message, error) { return notify.ContactAdmin(msg.Name, msg.Email, msg.Message) },
		func() (notify.Message, error) { return notify.ContactClient(msg.Name) },
	)
	if !delivery.AdminSent && !delivery.ClientSent {
		reason := delivery.AdminReason
		if reason == "" {
			reason = delivery.ClientReason
		}
		if reason == "" {
			reason = ReasonEmailSendFailed
		}
		return &delivery, &DeliveryFailedError{Reason: reason}
	}
	return &delivery, nil
}

func (uc *inquiryCommandsImpl) Subscribe(ctx context.Context, req NewsletterRequest) (*Delivery, error) {
	if strings.TrimSpace(req.Website) != "" {
		return nil, errs.ErrSpamDetected
	}
	sub, err := newsletter.NewSubscription(uc.refs.Next(ref.PrefixNewsletter), req.Email, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inquiries().CreateSubscription(ctx, sub)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.Inquiries.WithLabelValues("newsletter").Inc()

	publish(ctx, uc.publisher, shared.Event{
		Topic:      shared.TopicNewsletterSubscribed,
		Reference:  sub.ID,
		OccurredAt: sub.CreatedAt,
	})

	delivery := uc.postman.pair(ctx, "newsletter", uc.recipients.Newsletter, sub.Email,
		func() (notify.Message, error) { return notify.NewsletterAdmin(sub.Email) },
		func() (notify.Message, error) { return notify.NewsletterWelcome(sub.Email) },
	)
	return &delivery, nil
}

func (uc *inquiryCommandsImpl) TrackEvent(ctx context.Context, req TrackEventRequest) error {
	event, err := analytics.NewEvent(uc.refs.Next(ref.PrefixEvent), req.Event, req.Path, req.Label, uc.clock.Now())
	if err != nil {
		return err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inquiries().CreateEvent(ctx, event)
	})
	if err != nil {
		return err
	}
	uc.metrics.Inquiries.WithLabelValues("analytics").Inc()
	return nil
}
