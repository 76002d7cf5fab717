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
	"github.com/mercadodigital/commerce-service/internal/service"
	"github.com/mercadodigital/commerce-service/pkg/utils"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (service.PlaceOrderResult, error)
}

type OrderReader interface {
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID int64) ([]entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
	reader   OrderReader
}

func NewOrderHandler(logger *slog.Logger, placer OrderPlacer, reader OrderReader) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		placer:   placer,
		reader:   reader,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Get("/orders/customer/{account_id}", h.ListOrdersByAccount)
}

// PlaceOrder validates the checkout payload and runs the placement flow.
// A duplicate tax document answers 409 with the existing customer so the
// client can retry with account_id set.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	in, err := PlaceOrderJSONToInput(req)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.placer.PlaceOrder(ctx, in)

	var dup *entities.DuplicateDocumentError
	switch {
	case err == nil:
	case errors.As(err, &dup):
		ordersDuplicateDocument.Inc()
		utils.WriteJSON(w, DuplicateDocumentResponse{
			Message:  "document already registered",
			Existing: CustomerSummaryEntityToJSON(dup.Existing),
		}, http.StatusConflict)
		return
	case errors.Is(err, entities.ErrInvalidOrder), errors.Is(err, entities.ErrInvalidCustomer):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrProductNotFound), errors.Is(err, entities.ErrAccountNotFound):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	default:
		ordersFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, PlaceOrderResponse{
		OrderID:      result.OrderID,
		TrackingCode: result.TrackingCode,
	}, http.StatusCreated)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.reader.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.reader.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) ListOrdersByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	orders, err := h.reader.ListOrdersByAccount(ctx, accountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list account orders", slog.Any("error", err), slog.Int64("account_id", accountID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
