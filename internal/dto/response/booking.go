package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string                 `json:"id"`
	BookingID string                 `json:"booking_id"`
	UserID    string                 `json:"user_id"`
	VenueID   string                 `json:"venue_id,omitempty"`
	VenueName string                 `json:"venue_name,omitempty"`
	Services  []entity.ServiceLine   `json:"services"`
	Event     entity.EventDetails    `json:"event_details"`
	Contact   entity.ContactDetails  `json:"contact_details,omitempty"`
	Pricing   entity.Pricing         `json:"pricing"`
	Payment   entity.Payment         `json:"payment"`
	Status    entity.BookingStatus   `json:"status"`
	Timeline  []entity.TimelineEntry `json:"timeline,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        booking.ID.String(),
		BookingID: booking.BookingID,
		UserID:    booking.UserID.String(),
		VenueName: booking.VenueName,
		Services:  booking.Services,
		Event:     booking.Event,
		Contact:   booking.Contact,
		Pricing:   booking.Pricing,
		Payment:   booking.Payment,
		Status:    booking.Status,
		Timeline:  booking.Timeline,
		CreatedAt: booking.CreatedAt,
	}

	if booking.VenueID != nil {
		resp.VenueID = booking.VenueID.String()
	}

	return resp
}
