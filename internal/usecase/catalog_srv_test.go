package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	items []*entity.ServiceItem
	calls int
}

func (f *fakeCatalogRepo) FindByCategory(ctx context.Context, category entity.ServiceCategory) ([]*entity.ServiceItem, error) {
	f.calls++
	var out []*entity.ServiceItem
	for _, item := range f.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

func cateringItem(name string, price float64) *entity.ServiceItem {
	return &entity.ServiceItem{
		Base:      entity.Base{ID: uuid.New()},
		Name:      name,
		Category:  entity.CategoryCatering,
		UnitPrice: price,
		IsActive:  true,
	}
}

func catalogConfig() *utils.Config {
	return &utils.Config{
		Redis: utils.RedisConfig{CatalogTTL: 300},
	}
}

func TestGetServicesCacheMissReadsDatabaseAndWritesCache(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: []*entity.ServiceItem{
		cateringItem("Royal Buffet", 500),
	}}
	client, mock := redismock.NewClientMock()

	service := usecase.NewCatalogService(
		&repository.Repository{Catalog: catalogRepo},
		client, catalogConfig(), zap.NewNop(),
	)

	want := []response.ServiceItemResponse{
		response.ServiceItemToResponse(catalogRepo.items[0]),
	}
	encoded, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("catalog:catering").RedisNil()
	mock.ExpectSet("catalog:catering", encoded, 300*time.Second).SetVal("OK")

	items, err := service.GetServices(context.Background(), "catering")

	require.NoError(t, err)
	assert.Equal(t, want, items)
	assert.Equal(t, 1, catalogRepo.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetServicesCacheHitSkipsDatabase(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{}
	client, mock := redismock.NewClientMock()

	service := usecase.NewCatalogService(
		&repository.Repository{Catalog: catalogRepo},
		client, catalogConfig(), zap.NewNop(),
	)

	cached := []response.ServiceItemResponse{
		{ID: uuid.New().String(), Name: "Garden Lights", Category: entity.CategoryDecoration, UnitPrice: 2500},
	}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("catalog:decoration").SetVal(string(encoded))

	items, err := service.GetServices(context.Background(), "decoration")

	require.NoError(t, err)
	assert.Equal(t, cached, items)
	assert.Equal(t, 0, catalogRepo.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetServicesWithoutCacheReadsDatabase(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: []*entity.ServiceItem{
		cateringItem("Royal Buffet", 500),
	}}

	service := usecase.NewCatalogService(
		&repository.Repository{Catalog: catalogRepo},
		nil, catalogConfig(), zap.NewNop(),
	)

	items, err := service.GetServices(context.Background(), "catering")

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, catalogRepo.calls)
}

func TestGetServicesRejectsInvalidCategory(t *testing.T) {
	service := usecase.NewCatalogService(
		&repository.Repository{Catalog: &fakeCatalogRepo{}},
		nil, catalogConfig(), zap.NewNop(),
	)

	for _, category := range []string{"spaceships", "", "venue"} {
		_, err := service.GetServices(context.Background(), category)
		require.Error(t, err, "category %q should be rejected", category)
		assert.Contains(t, err.Error(), "invalid service category")
	}
}

func TestGetServiceByID(t *testing.T) {
	item := cateringItem("Royal Buffet", 500)
	inactive := cateringItem("Old Menu", 300)
	inactive.IsActive = false

	service := usecase.NewCatalogService(
		&repository.Repository{Catalog: &fakeCatalogRepo{items: []*entity.ServiceItem{item, inactive}}},
		nil, catalogConfig(), zap.NewNop(),
	)

	resp, err := service.GetServiceByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Royal Buffet", resp.Name)

	_, err = service.GetServiceByID(context.Background(), inactive.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = service.GetServiceByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid service ID")
}
