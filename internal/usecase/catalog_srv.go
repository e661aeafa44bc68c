package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetServices(ctx context.Context, category string) ([]response.ServiceItemResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceItemResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	cache *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewCatalogService wires the catalog reads with an optional redis
// cache; a nil client disables caching.
func NewCatalogService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
		ttl:   time.Duration(config.Redis.CatalogTTL) * time.Second,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetServices(ctx context.Context, category string) ([]response.ServiceItemResponse, error) {
	cat := entity.ServiceCategory(category)
	if !cat.Valid() || cat == entity.CategoryVenue {
		return nil, fmt.Errorf("invalid service category %s", category)
	}

	cacheKey := "catalog:" + category

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var items []response.ServiceItemResponse
			if err := json.Unmarshal(cached, &items); err == nil {
				return items, nil
			}
		} else if err != redis.Nil {
			// Cache errors degrade to a database read.
			s.log.Warn("Catalog cache read failed", zap.Error(err), zap.String("category", category))
		}
	}

	serviceItems, err := s.repo.Catalog.FindByCategory(ctx, cat)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err), zap.String("category", category))
		return nil, fmt.Errorf("get services for %s: %w", category, err)
	}

	items := make([]response.ServiceItemResponse, len(serviceItems))
	for i, item := range serviceItems {
		items[i] = response.ServiceItemToResponse(item)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.ttl).Err(); err != nil {
				s.log.Warn("Catalog cache write failed", zap.Error(err), zap.String("category", category))
			}
		}
	}

	return items, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceItemResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	item, err := s.repo.Catalog.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	if item == nil || !item.IsActive {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	resp := response.ServiceItemToResponse(item)
	return &resp, nil
}
