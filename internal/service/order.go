package service

import (
	"context"
	"log/slog"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

type OrderQueryRepo interface {
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID int64) ([]entities.Order, error)
}

type orderQueryService struct {
	logger *slog.Logger
	repo   OrderQueryRepo
}

func NewOrderQueryService(logger *slog.Logger, repo OrderQueryRepo) *orderQueryService {
	return &orderQueryService{
		logger: logger.With(slog.String("service", "orders")),
		repo:   repo,
	}
}

func (s *orderQueryService) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

func (s *orderQueryService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderQueryService) ListOrdersByAccount(ctx context.Context, accountID int64) ([]entities.Order, error) {
	return s.repo.ListOrdersByAccount(ctx, accountID)
}
