package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/pkg/utils"
)

type DashboardService interface {
	Stats(ctx context.Context) (entities.DashboardStats, error)
}

type DashboardHandler struct {
	logger *slog.Logger
	svc    DashboardService
}

func NewDashboardHandler(logger *slog.Logger, svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		logger: logger.With(slog.String("handler", "dashboard")),
		svc:    svc,
	}
}

func (h *DashboardHandler) Init(r chi.Router) {
	r.Get("/dashboard", h.Stats)
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard stats", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, DashboardEntityToJSON(stats), http.StatusOK)
}
