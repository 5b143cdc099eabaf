//go:build unit || e2e

package builder

import (
	reqdto "atlas-hotel/internal/handler/dto/request"
)

func ContactDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    "Paul Durand",
		Email:   "paul@example.com",
		Message: "Do you have parking for a camper van?",
	}
}

func NewsletterDTO() reqdto.NewsletterRequest {
	return reqdto.NewsletterRequest{Email: "reader@example.com"}
}

func AnalyticsDTO(event string) reqdto.AnalyticsRequest {
	return reqdto.AnalyticsRequest{Event: event, Path: "/rooms", Label: "hero"}
}
