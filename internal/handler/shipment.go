package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/pkg/utils"
)

type ShipmentService interface {
	AdvanceStatus(ctx context.Context, shipmentID int64, target entities.ShipmentStatus) error
	ConfirmReceipt(ctx context.Context, shipmentID int64) error
	ListShipments(ctx context.Context) ([]entities.Shipment, error)
	ListShipmentsByAccount(ctx context.Context, accountID int64) ([]entities.Shipment, error)
}

type ShipmentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShipmentService
}

func NewShipmentHandler(logger *slog.Logger, svc ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		logger:   logger.With(slog.String("handler", "shipments")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ShipmentHandler) Init(r chi.Router) {
	r.Get("/shipments", h.ListShipments)
	r.Get("/shipments/customer/{account_id}", h.ListShipmentsByAccount)
	r.Put("/shipments/{shipment_id}/status", h.AdvanceStatus)
	r.Put("/shipments/{shipment_id}/confirm", h.ConfirmReceipt)
}

func (h *ShipmentHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shipmentID, err := strconv.ParseInt(chi.URLParam(r, "shipment_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid shipment id", http.StatusBadRequest)
		return
	}

	var req AdvanceStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.svc.AdvanceStatus(ctx, shipmentID, entities.ShipmentStatus(req.Status))
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrShipmentNotFound):
		utils.WriteError(w, "shipment not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrShipmentAlreadyConfirmed), errors.Is(err, entities.ErrInvalidShipmentStatus):
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to advance shipment status",
			slog.Any("error", err), slog.Int64("shipment_id", shipmentID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	shipmentTransitions.WithLabelValues(req.Status).Inc()
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *ShipmentHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shipmentID, err := strconv.ParseInt(chi.URLParam(r, "shipment_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid shipment id", http.StatusBadRequest)
		return
	}

	err = h.svc.ConfirmReceipt(ctx, shipmentID)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrShipmentNotFound):
		utils.WriteError(w, "shipment not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrShipmentAlreadyConfirmed):
		utils.WriteError(w, "shipment is already confirmed", http.StatusConflict)
		return
	case errors.Is(err, entities.ErrShipmentNotDelivered):
		utils.WriteError(w, "shipment is not ready for confirmation", http.StatusConflict)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to confirm shipment",
			slog.Any("error", err), slog.Int64("shipment_id", shipmentID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	shipmentsConfirmed.Inc()
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *ShipmentHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shipments, err := h.svc.ListShipments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shipments", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		res = append(res, ShipmentEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *ShipmentHandler) ListShipmentsByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	shipments, err := h.svc.ListShipmentsByAccount(ctx, accountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list account shipments",
			slog.Any("error", err), slog.Int64("account_id", accountID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		res = append(res, ShipmentEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
