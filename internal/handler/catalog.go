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

type CatalogService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (int64, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID int64) (bool, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{product_id}", h.GetProduct)
	r.Put("/products/{product_id}", h.UpdateProduct)
	r.Delete("/products/{product_id}", h.DeleteProduct)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.svc.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.GetProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.Int64("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	productID, err := h.svc.CreateProduct(ctx, ProductJSONToEntity(req))
	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int64{"product_id": productID}, http.StatusCreated)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product := ProductJSONToEntity(req)
	product.ID = productID

	err = h.svc.UpdateProduct(ctx, product)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidProduct):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to update product", slog.Any("error", err), slog.Int64("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// DeleteProduct answers with deactivated=true when the product is still
// referenced by order lines and was kept as inactive instead of removed.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	deactivated, err := h.svc.DeleteProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete product", slog.Any("error", err), slog.Int64("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	message := "product deleted"
	if deactivated {
		message = "product deactivated, referenced by existing orders"
	}
	utils.WriteJSON(w, map[string]any{
		"success":     true,
		"deactivated": deactivated,
		"message":     message,
	}, http.StatusOK)
}
