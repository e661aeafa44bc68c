package response

import (
	"event-booking/internal/data/entity"
)

type VenueResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Location     string                    `json:"location"`
	BasePrice    float64                   `json:"base_price"`
	CapacityMin  int                       `json:"capacity_min"`
	CapacityMax  int                       `json:"capacity_max"`
	Availability []entity.AvailabilitySlot `json:"availability,omitempty"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:           venue.ID.String(),
		Name:         venue.Name,
		Location:     venue.Location,
		BasePrice:    venue.BasePrice,
		CapacityMin:  venue.CapacityMin,
		CapacityMax:  venue.CapacityMax,
		Availability: venue.Availability,
	}
}
