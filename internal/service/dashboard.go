package service

import (
	"context"
	"log/slog"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

type StatsRepo interface {
	GetDashboardStats(ctx context.Context) (entities.DashboardStats, error)
}

type dashboardService struct {
	logger *slog.Logger
	repo   StatsRepo
}

func NewDashboardService(logger *slog.Logger, repo StatsRepo) *dashboardService {
	return &dashboardService{
		logger: logger.With(slog.String("service", "dashboard")),
		repo:   repo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (entities.DashboardStats, error) {
	return s.repo.GetDashboardStats(ctx)
}
