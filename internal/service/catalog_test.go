package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/service"
	mocks "github.com/mercadodigital/commerce-service/internal/service/mocks"
)

func TestCatalogService_GetProduct(t *testing.T) {
	validProduct := entities.Product{
		ID:       1,
		Name:     "Keyboard",
		Category: "peripherals",
		Price:    decimal.NewFromFloat(150.50),
		Status:   entities.ProductStatusActive,
	}
	validData, err := validProduct.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Product
	}{
		{
			name: "served from cache",
			mockBehavior: func(_ *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(validData, true).Once()
			},
			want: validProduct,
		},
		{
			name: "cache miss falls back to repo and fills cache",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(nil, false).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).Return(validProduct, nil).Once()
				cache.EXPECT().Set("product:1", validData).Return().Once()
			},
			want: validProduct,
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(nil, false).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewCatalogService(logger, repo, cache)

			got, err := svc.GetProduct(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.Name, got.Name)
			assert.True(t, tc.want.Price.Equal(got.Price))
		})
	}
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	activeProduct := entities.Product{ID: 1, Name: "Keyboard", Status: entities.ProductStatusActive}
	dbError := errors.New("db error")

	testCases := []struct {
		name            string
		mockBehavior    func(repo *mocks.MockProductRepo, cache *mocks.MockCache)
		wantDeactivated bool
		wantErr         error
	}{
		{
			name: "hard delete when unreferenced",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).Return(activeProduct, nil).Once()
				repo.EXPECT().CountProductReferences(mock.Anything, int64(1)).Return(0, nil).Once()
				repo.EXPECT().DeleteProduct(mock.Anything, int64(1)).Return(nil).Once()
				cache.EXPECT().Remove("product:1").Return().Once()
			},
			wantDeactivated: false,
		},
		{
			name: "soft delete when order lines reference it",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).Return(activeProduct, nil).Once()
				repo.EXPECT().CountProductReferences(mock.Anything, int64(1)).Return(3, nil).Once()
				repo.EXPECT().DeactivateProduct(mock.Anything, int64(1)).Return(nil).Once()
				cache.EXPECT().Remove("product:1").Return().Once()
			},
			wantDeactivated: true,
		},
		{
			name: "missing product",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "reference count fails",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).Return(activeProduct, nil).Once()
				repo.EXPECT().CountProductReferences(mock.Anything, int64(1)).Return(0, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewCatalogService(logger, repo, cache)

			deactivated, err := svc.DeleteProduct(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDeactivated, deactivated)
		})
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Run("rejects missing name", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		svc := service.NewCatalogService(logger, repo, cache)

		_, err := svc.CreateProduct(context.Background(), entities.Product{Category: "peripherals"})
		assert.ErrorIs(t, err, entities.ErrInvalidProduct)
	})

	t.Run("persists valid product", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(int64(10), nil).Once()

		svc := service.NewCatalogService(logger, repo, cache)

		id, err := svc.CreateProduct(context.Background(), entities.Product{Name: "Keyboard", Category: "peripherals"})
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})
}
