package contact

import (
	"strings"
	"time"

	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/pkg/errs"
)

// Message is a note left through the contact form.
type Message struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
}

func NewMessage(id, name, email, message string, now time.Time) (Message, error) {
	m := Message{
		ID:        id,
		CreatedAt: now,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
	}
	if m.Name == "" || m.Message == "" || !customer.ValidEmail(m.Email) {
		return Message{}, errs.ErrInvalidPayload
	}
	return m, nil
}
