package repository

import (
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Venue   VenueRepository
	Catalog CatalogRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Venue:   NewVenueRepository(db, log),
		Catalog: NewCatalogRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
