package repository

import (
	"context"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/pkg/pgconv"
)

const (
	insertContactSQL      = `INSERT INTO contacts (id, created_at, name, email, message) VALUES ($1, $2, $3, $4, $5)`
	insertSubscriptionSQL = `INSERT INTO newsletter (id, created_at, email) VALUES ($1, $2, $3)`
	insertEventSQL        = `INSERT INTO analytics (id, created_at, event, path, label) VALUES ($1, $2, $3, $4, $5)`
)

type InquiryRepository struct {
	db db.DBTX
}

func NewInquiryRepository(dbtx db.DBTX) *InquiryRepository {
	return &InquiryRepository{db: dbtx}
}

func (r *InquiryRepository) CreateContact(ctx context.Context, m contact.Message) error {
	_, err := r.db.Exec(ctx, insertContactSQL, m.ID, m.CreatedAt, m.Name, m.Email, m.Message)
	return insertErr("contact message", err)
}

func (r *InquiryRepository) CreateSubscription(ctx context.Context, s newsletter.Subscription) error {
	_, err := r.db.Exec(ctx, insertSubscriptionSQL, s.ID, s.CreatedAt, s.Email)
	return insertErr("newsletter subscription", err)
}

func (r *InquiryRepository) CreateEvent(ctx context.Context, e analytics.Event) error {
	_, err := r.db.Exec(ctx, insertEventSQL, e.ID, e.CreatedAt, e.Event, e.Path, e.Label)
	return insertErr("analytics event", err)
}

func insertErr(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(what+" already exists", err, infra.KindDuplicateKey)
	default:
		return infra.WrapRepoErr("failed to insert "+what, err)
	}
}
