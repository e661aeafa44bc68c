package usecase

import (
	"context"
	"fmt"

	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	ListVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) ListVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error) {
	venues, err := s.repo.Venue.FindActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list venues", zap.Error(err))
		return nil, fmt.Errorf("list venues: %w", err)
	}

	total, err := s.repo.Venue.CountActive(ctx)
	if err != nil {
		s.log.Error("Failed to count venues", zap.Error(err))
		return nil, fmt.Errorf("count venues: %w", err)
	}

	venueResponses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		venueResponses[i] = response.VenueToResponse(venue)
	}

	return response.NewPaginatedResponse(venueResponses, req.Page, req.PerPage, total), nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID format %s: %w", venueID, err)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue %s: %w", venueID, err)
	}
	if venue == nil || !venue.IsActive {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}

	resp := response.VenueToResponse(venue)
	return &resp, nil
}
