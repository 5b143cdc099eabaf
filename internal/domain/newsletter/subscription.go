package newsletter

import (
	"strings"
	"time"

	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/pkg/errs"
)

type Subscription struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email"`
}

func NewSubscription(id, email string, now time.Time) (Subscription, error) {
	email = strings.TrimSpace(email)
	if !customer.ValidEmail(email) {
		return Subscription{}, errs.ErrInvalidEmail
	}
	return Subscription{ID: id, CreatedAt: now, Email: email}, nil
}
