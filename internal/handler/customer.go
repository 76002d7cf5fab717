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

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomer(ctx context.Context, accountID int64) (entities.Customer, error)
	FindByDocument(ctx context.Context, kind entities.AccountKind, document string) (entities.CustomerSummary, error)
	CreateCustomer(ctx context.Context, nc entities.NewCustomer) (int64, error)
	UpdateCustomer(ctx context.Context, accountID int64, nc entities.NewCustomer) error
	DeleteCustomer(ctx context.Context, accountID int64) error
}

type CustomerHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CustomerService
}

func NewCustomerHandler(logger *slog.Logger, svc CustomerService) *CustomerHandler {
	return &CustomerHandler{
		logger:   logger.With(slog.String("handler", "customers")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CustomerHandler) Init(r chi.Router) {
	r.Get("/customers", h.ListCustomers)
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers/{account_id}", h.GetCustomer)
	r.Put("/customers/{account_id}", h.UpdateCustomer)
	r.Delete("/customers/{account_id}", h.DeleteCustomer)
	r.Get("/customers/document/{kind}/{document}", h.FindByDocument)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.svc.ListCustomers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list customers", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		res = append(res, CustomerEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NewCustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	nc, err := NewCustomerJSONToEntity(req)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := h.svc.CreateCustomer(ctx, nc)

	var dup *entities.DuplicateDocumentError
	switch {
	case err == nil:
	case errors.As(err, &dup):
		utils.WriteJSON(w, DuplicateDocumentResponse{
			Message:  "document already registered",
			Existing: CustomerSummaryEntityToJSON(dup.Existing),
		}, http.StatusConflict)
		return
	case errors.Is(err, entities.ErrInvalidCustomer):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to create customer", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int64{"account_id": accountID}, http.StatusCreated)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	customer, err := h.svc.GetCustomer(ctx, accountID)
	if errors.Is(err, entities.ErrAccountNotFound) {
		utils.WriteError(w, "customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get customer", slog.Any("error", err), slog.Int64("account_id", accountID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	var req NewCustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	nc, err := NewCustomerJSONToEntity(req)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.UpdateCustomer(ctx, accountID, nc)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrAccountNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidCustomer):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to update customer", slog.Any("error", err), slog.Int64("account_id", accountID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	err = h.svc.DeleteCustomer(ctx, accountID)
	if errors.Is(err, entities.ErrAccountNotFound) {
		utils.WriteError(w, "customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete customer", slog.Any("error", err), slog.Int64("account_id", accountID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// FindByDocument is the checkout pre-flight: it answers whether the document
// already belongs to an account, without creating anything.
func (h *CustomerHandler) FindByDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := chi.URLParam(r, "kind")
	document := chi.URLParam(r, "document")

	summary, err := h.svc.FindByDocument(ctx, entities.AccountKind(kind), document)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrAccountNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidCustomer):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to find customer by document", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CustomerSummaryEntityToJSON(summary), http.StatusOK)
}
