package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

type ProductRepo interface {
	ListActiveProducts(ctx context.Context) ([]entities.Product, error)
	GetActiveProduct(ctx context.Context, productID int64) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (int64, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	CountProductReferences(ctx context.Context, productID int64) (int, error)
	DeactivateProduct(ctx context.Context, productID int64) error
	DeleteProduct(ctx context.Context, productID int64) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type catalogService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, repo ProductRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

// GetProduct serves the public product page; reads go through the cache.
// Order pricing never uses this path, it reads inside its own transaction.
func (s *catalogService) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	key := cacheKey(productID)
	if data, ok := s.cache.Get(key); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached product", slog.Any("error", err))
			return entities.Product{}, err
		}
		return product, nil
	}

	product, err := s.repo.GetActiveProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}

	data, err := product.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal product", slog.Any("error", err))
		return entities.Product{}, err
	}
	s.cache.Set(key, data)
	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product) (int64, error) {
	if p.Name == "" || p.Category == "" {
		return 0, fmt.Errorf("%w: name and category are required", entities.ErrInvalidProduct)
	}
	return s.repo.CreateProduct(ctx, p)
}

func (s *catalogService) UpdateProduct(ctx context.Context, p entities.Product) error {
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return err
	}
	s.cache.Remove(cacheKey(p.ID))
	return nil
}

// DeleteProduct removes the product, or only deactivates it when order lines
// still reference it. Returns true when the product was kept as inactive.
func (s *catalogService) DeleteProduct(ctx context.Context, productID int64) (bool, error) {
	if _, err := s.repo.GetActiveProduct(ctx, productID); err != nil {
		return false, err
	}

	refs, err := s.repo.CountProductReferences(ctx, productID)
	if err != nil {
		return false, err
	}

	if refs > 0 {
		if err := s.repo.DeactivateProduct(ctx, productID); err != nil {
			return false, err
		}
		s.cache.Remove(cacheKey(productID))
		s.logger.DebugContext(ctx, "product deactivated, referenced by orders",
			slog.Int64("product_id", productID), slog.Int("references", refs))
		return true, nil
	}

	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return false, err
	}
	s.cache.Remove(cacheKey(productID))
	return false, nil
}

func cacheKey(productID int64) string {
	return "product:" + strconv.FormatInt(productID, 10)
}
