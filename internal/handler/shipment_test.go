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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/handler"
	mocks "github.com/mercadodigital/commerce-service/internal/handler/mocks"
)

func TestShipmentHandler_AdvanceStatus(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockShipmentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/shipments/5/status",
			body: `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().
					AdvanceStatus(mock.Anything, int64(5), entities.ShipmentStatusShipped).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:         "confirmed is rejected by validation",
			path:         "/shipments/5/status",
			body:         `{"status": "confirmed"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "already confirmed",
			path: "/shipments/5/status",
			body: `{"status": "delivered"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().
					AdvanceStatus(mock.Anything, int64(5), entities.ShipmentStatusDelivered).
					Return(entities.ErrShipmentAlreadyConfirmed).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "not found",
			path: "/shipments/404/status",
			body: `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().
					AdvanceStatus(mock.Anything, int64(404), entities.ShipmentStatusShipped).
					Return(entities.ErrShipmentNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"shipment not found"`,
		},
		{
			name:         "invalid id",
			path:         "/shipments/abc/status",
			body:         `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid shipment id"`,
		},
		{
			name: "internal error",
			path: "/shipments/5/status",
			body: `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().
					AdvanceStatus(mock.Anything, int64(5), entities.ShipmentStatusShipped).
					Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShipmentService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewShipmentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
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

func TestShipmentHandler_ConfirmReceipt(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockShipmentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/shipments/5/confirm",
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().ConfirmReceipt(mock.Anything, int64(5)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "already confirmed",
			path: "/shipments/5/confirm",
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().ConfirmReceipt(mock.Anything, int64(5)).
					Return(entities.ErrShipmentAlreadyConfirmed).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"shipment is already confirmed"`,
		},
		{
			name: "not delivered yet",
			path: "/shipments/5/confirm",
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().ConfirmReceipt(mock.Anything, int64(5)).
					Return(entities.ErrShipmentNotDelivered).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"shipment is not ready for confirmation"`,
		},
		{
			name: "not found",
			path: "/shipments/404/confirm",
			mockBehavior: func(svc *mocks.MockShipmentService) {
				svc.EXPECT().ConfirmReceipt(mock.Anything, int64(404)).
					Return(entities.ErrShipmentNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"shipment not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShipmentService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewShipmentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPut, tc.path, nil)
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
