package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/handler"
	mocks "github.com/mercadodigital/commerce-service/internal/handler/mocks"
	"github.com/mercadodigital/commerce-service/internal/service"
)

const placeOrderBody = `{
	"account_id": 42,
	"order_date": "2025-03-10",
	"lines": [{"product_id": 1, "quantity": 2}],
	"payments": [{"kind": "pix", "amount": "301.00"}]
}`

func TestOrderHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(placer *mocks.MockOrderPlacer)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: placeOrderBody,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(in service.PlaceOrderInput) bool {
						return in.AccountID == 42 && len(in.Lines) == 1 && len(in.Payments) == 1
					})).
					Return(service.PlaceOrderResult{OrderID: 7, TrackingCode: "BR0123456789A"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"tracking_code":"BR0123456789A"`,
		},
		{
			name: "duplicate document",
			body: placeOrderBody,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(service.PlaceOrderResult{}, &entities.DuplicateDocumentError{
						Existing: entities.CustomerSummary{AccountID: 42, Name: "Maria Souza"},
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"account_id":42`,
		},
		{
			name: "unknown product",
			body: placeOrderBody,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"product not found"`,
		},
		{
			name: "invalid order data",
			body: placeOrderBody,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrInvalidOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "missing lines fails validation",
			body:         `{"account_id": 42, "order_date": "2025-03-10", "payments": [{"kind": "pix", "amount": "10"}]}`,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "broken body",
			body:         `{`,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "internal error",
			body: placeOrderBody,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(service.PlaceOrderResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			placer := mocks.NewMockOrderPlacer(t)
			reader := mocks.NewMockOrderReader(t)
			tc.mockBehavior(placer)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewOrderHandler(logger, placer, reader)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{
		ID:        7,
		AccountID: 42,
		Total:     decimal.NewFromFloat(301.00),
		Status:    entities.OrderStatusPending,
	}

	testCases := []struct {
		name         string
		path         string
		mockBehavior func(reader *mocks.MockOrderReader)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/orders/7",
			mockBehavior: func(reader *mocks.MockOrderReader) {
				reader.EXPECT().GetOrder(mock.Anything, int64(7)).Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":7`,
		},
		{
			name: "not found",
			path: "/orders/404",
			mockBehavior: func(reader *mocks.MockOrderReader) {
				reader.EXPECT().GetOrder(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			path:         "/orders/abc",
			mockBehavior: func(reader *mocks.MockOrderReader) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			placer := mocks.NewMockOrderPlacer(t)
			reader := mocks.NewMockOrderReader(t)
			tc.mockBehavior(reader)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewOrderHandler(logger, placer, reader)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
