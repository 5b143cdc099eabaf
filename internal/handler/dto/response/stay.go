package response

import (
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/usecase/queries"
)

type AvailabilityResponse struct {
	OK           bool                      `json:"ok"`
	Availability availability.Availability `json:"availability"`
}

type EstimateResponse struct {
	OK       bool              `json:"ok"`
	Estimate *pricing.Estimate `json:"estimate"`
}

type RoomsResponse struct {
	OK    bool               `json:"ok"`
	Rooms []queries.RoomView `json:"rooms"`
}
