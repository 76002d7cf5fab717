package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/service"
	mocks "github.com/mercadodigital/commerce-service/internal/service/mocks"
	txMocks "github.com/mercadodigital/commerce-service/pkg/trm/mocks"
)

func TestShipmentService_AdvanceStatus(t *testing.T) {
	testCases := []struct {
		name         string
		target       entities.ShipmentStatus
		mockBehavior func(repo *mocks.MockShipmentRepo)
		wantErr      error
	}{
		{
			name:   "shipped stamps shipped_at",
			target: entities.ShipmentStatusShipped,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusPreparing}, nil).Once()
				repo.EXPECT().UpdateShipmentStatus(mock.Anything, int64(5), entities.ShipmentStatusShipped,
					mock.MatchedBy(func(ts *time.Time) bool { return ts != nil }),
					mock.MatchedBy(func(ts *time.Time) bool { return ts == nil }),
				).Return(nil).Once()
			},
		},
		{
			name:   "in transit also stamps shipped_at",
			target: entities.ShipmentStatusInTransit,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusShipped}, nil).Once()
				repo.EXPECT().UpdateShipmentStatus(mock.Anything, int64(5), entities.ShipmentStatusInTransit,
					mock.MatchedBy(func(ts *time.Time) bool { return ts != nil }),
					mock.MatchedBy(func(ts *time.Time) bool { return ts == nil }),
				).Return(nil).Once()
			},
		},
		{
			name:   "delivered stamps delivered_at",
			target: entities.ShipmentStatusDelivered,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusInTransit}, nil).Once()
				repo.EXPECT().UpdateShipmentStatus(mock.Anything, int64(5), entities.ShipmentStatusDelivered,
					mock.MatchedBy(func(ts *time.Time) bool { return ts == nil }),
					mock.MatchedBy(func(ts *time.Time) bool { return ts != nil }),
				).Return(nil).Once()
			},
		},
		{
			name:   "moving back to preparing keeps both stamps untouched",
			target: entities.ShipmentStatusPreparing,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusDelivered}, nil).Once()
				repo.EXPECT().UpdateShipmentStatus(mock.Anything, int64(5), entities.ShipmentStatusPreparing,
					mock.MatchedBy(func(ts *time.Time) bool { return ts == nil }),
					mock.MatchedBy(func(ts *time.Time) bool { return ts == nil }),
				).Return(nil).Once()
			},
		},
		{
			name:   "confirmed shipment never moves",
			target: entities.ShipmentStatusShipped,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusConfirmed}, nil).Once()
			},
			wantErr: entities.ErrShipmentAlreadyConfirmed,
		},
		{
			name:   "confirmed is not a valid target",
			target: entities.ShipmentStatusConfirmed,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusDelivered}, nil).Once()
			},
			wantErr: entities.ErrInvalidShipmentStatus,
		},
		{
			name:   "unknown target",
			target: "teleported",
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusPreparing}, nil).Once()
			},
			wantErr: entities.ErrInvalidShipmentStatus,
		},
		{
			name:   "missing shipment",
			target: entities.ShipmentStatusShipped,
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()
			},
			wantErr: entities.ErrShipmentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockShipmentRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo)

			svc := service.NewShipmentService(logger, tx, repo)

			err := svc.AdvanceStatus(context.Background(), 5, tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShipmentService_ConfirmReceipt(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockShipmentRepo)
		wantErr      error
	}{
		{
			name: "confirms delivered shipment and finalizes order",
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, OrderID: 7, Status: entities.ShipmentStatusDelivered}, nil).Once()
				repo.EXPECT().ConfirmShipment(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
				repo.EXPECT().SetOrderStatus(mock.Anything, int64(7), entities.OrderStatusFinalized).Return(nil).Once()
			},
		},
		{
			name: "rejects repeat confirmation",
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusConfirmed}, nil).Once()
			},
			wantErr: entities.ErrShipmentAlreadyConfirmed,
		},
		{
			name: "rejects confirmation before delivery",
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 5, Status: entities.ShipmentStatusInTransit}, nil).Once()
			},
			wantErr: entities.ErrShipmentNotDelivered,
		},
		{
			name: "missing shipment",
			mockBehavior: func(repo *mocks.MockShipmentRepo) {
				repo.EXPECT().GetShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()
			},
			wantErr: entities.ErrShipmentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockShipmentRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo)

			svc := service.NewShipmentService(logger, tx, repo)

			err := svc.ConfirmReceipt(context.Background(), 5)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
