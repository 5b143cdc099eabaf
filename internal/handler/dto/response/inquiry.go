package response

import (
	"time"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"

	"github.com/jinzhu/copier"
)

type InquiryResponse struct {
	OK bool `json:"ok"`
	EmailReport
}

type AckResponse struct {
	OK bool `json:"ok"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
}

type SubscriptionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Event     string    `json:"event"`
	Path      string    `json:"path"`
	Label     string    `json:"label"`
}

// copyList maps a domain slice onto its wire type by field name. The result
// is never nil so empty collections encode as [].
func copyList[T any, S any](src []S) ([]T, error) {
	out := make([]T, 0, len(src))
	if len(src) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &src); err != nil {
		return nil, err
	}
	return out, nil
}

func FromContacts(items []contact.Message) ([]ContactResponse, error) {
	return copyList[ContactResponse](items)
}

func FromSubscriptions(items []newsletter.Subscription) ([]SubscriptionResponse, error) {
	return copyList[SubscriptionResponse](items)
}

func FromEvents(items []analytics.Event) ([]EventResponse, error) {
	return copyList[EventResponse](items)
}
