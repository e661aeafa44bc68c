package usecase

import (
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Venue   VenueService
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Venue:   NewVenueService(repo, log),
		Catalog: NewCatalogService(repo, cache, config, log),
		Booking: NewBookingService(repo, config, log),
	}
}
