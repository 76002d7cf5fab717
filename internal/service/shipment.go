package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/pkg/trm"
)

type ShipmentRepo interface {
	GetShipment(ctx context.Context, shipmentID int64) (entities.Shipment, error)
	ListShipments(ctx context.Context) ([]entities.Shipment, error)
	ListShipmentsByAccount(ctx context.Context, accountID int64) ([]entities.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, shipmentID int64, status entities.ShipmentStatus, shippedAt, deliveredAt *time.Time) error
	ConfirmShipment(ctx context.Context, shipmentID int64, confirmedAt time.Time) error
	SetOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
}

type shipmentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ShipmentRepo
}

func NewShipmentService(logger *slog.Logger, txManager trm.Manager, repo ShipmentRepo) *shipmentService {
	return &shipmentService{
		logger:    logger.With(slog.String("service", "shipment")),
		txManager: txManager,
		repo:      repo,
	}
}

// AdvanceStatus moves a shipment between the non-terminal statuses. SHIPPED
// and IN_TRANSIT stamp shipped_at, DELIVERED stamps delivered_at; repeated
// transitions overwrite the stamps. A confirmed shipment never moves again.
func (s *shipmentService) AdvanceStatus(ctx context.Context, shipmentID int64, target entities.ShipmentStatus) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repo.GetShipment(ctx, shipmentID)
		if err != nil {
			return err
		}

		if shipment.Status == entities.ShipmentStatusConfirmed {
			return entities.ErrShipmentAlreadyConfirmed
		}
		if !shipment.Status.CanAdvanceTo(target) {
			return fmt.Errorf("%w: %s", entities.ErrInvalidShipmentStatus, target)
		}

		now := time.Now()
		var shippedAt, deliveredAt *time.Time
		switch target {
		case entities.ShipmentStatusShipped, entities.ShipmentStatusInTransit:
			shippedAt = &now
		case entities.ShipmentStatusDelivered:
			deliveredAt = &now
		}

		if err := s.repo.UpdateShipmentStatus(ctx, shipmentID, target, shippedAt, deliveredAt); err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "shipment status updated",
			slog.Int64("shipment_id", shipmentID),
			slog.String("from", string(shipment.Status)),
			slog.String("to", string(target)),
		)
		return nil
	})
}

// ConfirmReceipt is the customer's terminal acknowledgement: the shipment
// becomes CONFIRMED and the parent order FINALIZED in the same transaction.
// The shipment must already be DELIVERED.
func (s *shipmentService) ConfirmReceipt(ctx context.Context, shipmentID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repo.GetShipment(ctx, shipmentID)
		if err != nil {
			return err
		}

		if shipment.Status == entities.ShipmentStatusConfirmed {
			return entities.ErrShipmentAlreadyConfirmed
		}
		if shipment.Status != entities.ShipmentStatusDelivered {
			return entities.ErrShipmentNotDelivered
		}

		if err := s.repo.ConfirmShipment(ctx, shipmentID, time.Now()); err != nil {
			return err
		}
		if err := s.repo.SetOrderStatus(ctx, shipment.OrderID, entities.OrderStatusFinalized); err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "shipment confirmed",
			slog.Int64("shipment_id", shipmentID),
			slog.Int64("order_id", shipment.OrderID),
		)
		return nil
	})
}

func (s *shipmentService) GetShipment(ctx context.Context, shipmentID int64) (entities.Shipment, error) {
	return s.repo.GetShipment(ctx, shipmentID)
}

func (s *shipmentService) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	return s.repo.ListShipments(ctx)
}

func (s *shipmentService) ListShipmentsByAccount(ctx context.Context, accountID int64) ([]entities.Shipment, error) {
	return s.repo.ListShipmentsByAccount(ctx, accountID)
}
