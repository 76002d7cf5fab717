package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

var shipmentColumns = []string{
	"shipment_id", "order_id", "tracking_code", "address", "status",
	"estimated_delivery", "shipped_at", "delivered_at", "confirmed_at", "created_at",
}

func (r *postgresRepo) SaveShipment(ctx context.Context, s entities.Shipment) (int64, error) {
	query, args := r.qb.Insert("shipments").
		Columns("order_id", "tracking_code", "address", "status", "estimated_delivery").
		Values(s.OrderID, s.TrackingCode, s.Address, string(s.Status), s.EstimatedDelivery).
		Suffix("RETURNING shipment_id").
		MustSql()

	var shipmentID int64
	if err := r.getContext(ctx, &shipmentID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert shipment: %w", err)
	}
	return shipmentID, nil
}

func (r *postgresRepo) GetShipment(ctx context.Context, shipmentID int64) (entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"shipment_id": shipmentID}).
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment: %w", err)
	}
	return ShipmentToEntity(shipment), nil
}

func (r *postgresRepo) GetShipmentByOrder(ctx context.Context, orderID int64) (entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment by order: %w", err)
	}
	return ShipmentToEntity(shipment), nil
}

func (r *postgresRepo) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	query, args := r.qb.Select(
		"s.shipment_id", "s.order_id", "s.tracking_code", "s.address", "s.status",
		"s.estimated_delivery", "s.shipped_at", "s.delivered_at", "s.confirmed_at", "s.created_at",
		customerNameExpr).
		From("shipments s").
		Join("orders o ON o.order_id = s.order_id").
		LeftJoin("individual_profiles ip ON ip.account_id = o.account_id").
		LeftJoin("corporate_profiles cp ON cp.account_id = o.account_id").
		OrderBy("s.created_at DESC").
		MustSql()

	var shipments []ShipmentWithCustomer
	if err := r.selectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipments: %w", err)
	}

	result := make([]entities.Shipment, 0, len(shipments))
	for _, s := range shipments {
		shipment := ShipmentToEntity(s.Shipment)
		shipment.CustomerName = s.CustomerName
		result = append(result, shipment)
	}
	return result, nil
}

func (r *postgresRepo) ListShipmentsByAccount(ctx context.Context, accountID int64) ([]entities.Shipment, error) {
	query, args := r.qb.Select(
		"s.shipment_id", "s.order_id", "s.tracking_code", "s.address", "s.status",
		"s.estimated_delivery", "s.shipped_at", "s.delivered_at", "s.confirmed_at", "s.created_at").
		From("shipments s").
		Join("orders o ON o.order_id = s.order_id").
		Where(sq.Eq{"o.account_id": accountID}).
		OrderBy("s.created_at DESC").
		MustSql()

	var shipments []Shipment
	if err := r.selectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipments: %w", err)
	}

	result := make([]entities.Shipment, 0, len(shipments))
	for _, s := range shipments {
		result = append(result, ShipmentToEntity(s))
	}
	return result, nil
}

// UpdateShipmentStatus writes the status and whichever transition timestamps
// the caller stamped. Nil pointers leave the stored values untouched.
func (r *postgresRepo) UpdateShipmentStatus(ctx context.Context, shipmentID int64, status entities.ShipmentStatus, shippedAt, deliveredAt *time.Time) error {
	builder := r.qb.Update("shipments").
		Set("status", string(status))

	if shippedAt != nil {
		builder = builder.Set("shipped_at", ptrToNullTime(shippedAt))
	}
	if deliveredAt != nil {
		builder = builder.Set("delivered_at", ptrToNullTime(deliveredAt))
	}

	query, args := builder.Where(sq.Eq{"shipment_id": shipmentID}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shipment status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrShipmentNotFound
	}
	return nil
}

func (r *postgresRepo) ConfirmShipment(ctx context.Context, shipmentID int64, confirmedAt time.Time) error {
	query, args := r.qb.Update("shipments").
		Set("status", string(entities.ShipmentStatusConfirmed)).
		Set("confirmed_at", confirmedAt).
		Where(sq.Eq{"shipment_id": shipmentID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to confirm shipment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrShipmentNotFound
	}
	return nil
}
