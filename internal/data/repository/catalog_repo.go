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

type CatalogRepository interface {
	FindByCategory(ctx context.Context, category entity.ServiceCategory) ([]*entity.ServiceItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error)
}

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) FindByCategory(ctx context.Context, category entity.ServiceCategory) ([]*entity.ServiceItem, error) {
	query := `
		SELECT id, name, category, description, unit_price, customizations,
		       is_active, created_at, updated_at
		FROM service_items
		WHERE category = $1 AND is_active = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to find services by category",
			zap.Error(err),
			zap.String("category", string(category)),
		)
		return nil, fmt.Errorf("find services by category %s: %w", category, err)
	}
	defer rows.Close()

	var items []*entity.ServiceItem
	for rows.Next() {
		item, err := scanServiceItem(rows.Scan)
		if err != nil {
			r.log.Error("Failed to scan service item row", zap.Error(err))
			return nil, fmt.Errorf("scan service item row: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	query := `
		SELECT id, name, category, description, unit_price, customizations,
		       is_active, created_at, updated_at
		FROM service_items
		WHERE id = $1
	`

	item, err := scanServiceItem(r.db.QueryRow(ctx, query, id).Scan)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service item by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func scanServiceItem(scan func(dest ...any) error) (*entity.ServiceItem, error) {
	var item entity.ServiceItem
	var customizations []byte

	err := scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.UnitPrice,
		&customizations,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
			return nil, fmt.Errorf("decode customizations: %w", err)
		}
	}

	return &item, nil
}
