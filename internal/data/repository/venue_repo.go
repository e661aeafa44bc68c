package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindActive(ctx context.Context, limit, offset int) ([]*entity.Venue, error)
	CountActive(ctx context.Context) (int64, error)
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `
		SELECT id, name, location, base_price, capacity_min, capacity_max,
		       is_active, is_verified, availability, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue entity.Venue
	var availability []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Location,
		&venue.BasePrice,
		&venue.CapacityMin,
		&venue.CapacityMax,
		&venue.IsActive,
		&venue.IsVerified,
		&availability,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &venue.Availability); err != nil {
			return nil, fmt.Errorf("decode venue %s availability: %w", id.String(), err)
		}
	}

	return &venue, nil
}

func (r *venueRepository) FindActive(ctx context.Context, limit, offset int) ([]*entity.Venue, error) {
	query := `
		SELECT id, name, location, base_price, capacity_min, capacity_max,
		       is_active, is_verified, availability, created_at, updated_at
		FROM venues
		WHERE is_active = TRUE AND is_verified = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active venues",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find active venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		var availability []byte
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Location,
			&venue.BasePrice,
			&venue.CapacityMin,
			&venue.CapacityMax,
			&venue.IsActive,
			&venue.IsVerified,
			&availability,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}

		if len(availability) > 0 {
			if err := json.Unmarshal(availability, &venue.Availability); err != nil {
				return nil, fmt.Errorf("decode venue availability: %w", err)
			}
		}

		venues = append(venues, &venue)
	}

	return venues, nil
}

func (r *venueRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM venues WHERE is_active = TRUE AND is_verified = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active venues", zap.Error(err))
		return 0, fmt.Errorf("count active venues: %w", err)
	}

	return count, nil
}
