package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	// Public browse routes
	r.Get("/api/venues", venueHandler.ListVenues)
	r.Get("/api/venues/{id}", venueHandler.GetVenueByID)
}
