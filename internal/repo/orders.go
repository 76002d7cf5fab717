package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

const customerNameExpr = "COALESCE(ip.name, cp.legal_name, '') AS customer_name"

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("account_id", "order_date", "total", "status", "notes").
		Values(o.AccountID, o.OrderDate, o.Total, string(o.Status), nullString(o.Notes)).
		Suffix("RETURNING order_id").
		MustSql()

	var orderID int64
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return orderID, nil
}

func (r *postgresRepo) SaveOrderLines(ctx context.Context, orderID int64, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "product_id", "quantity", "unit_price", "subtotal")

	for _, l := range lines {
		q = q.Values(orderID, l.ProductID, l.Quantity, l.UnitPrice, l.Subtotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) SavePayments(ctx context.Context, orderID int64, payments []entities.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	q := r.qb.Insert("payments").
		Columns("order_id", "kind", "amount", "details")

	for _, p := range payments {
		q = q.Values(orderID, string(p.Kind), p.Amount, nullString(p.Details))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert payments: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select("order_id", "account_id", "order_date", "total", "status", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"l.line_id", "l.order_id", "l.product_id", "p.name AS product_name",
		"l.quantity", "l.unit_price", "l.subtotal").
		From("order_lines l").
		Join("products p ON p.product_id = l.product_id").
		Where(sq.Eq{"l.order_id": orderID}).
		OrderBy("l.line_id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to select order lines: %w", err)
	}

	query, args = r.qb.Select("payment_id", "order_id", "kind", "amount", "details").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("payment_id").
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to select payments: %w", err)
	}

	result := OrderToEntity(order)
	result.Lines = make([]entities.OrderLine, 0, len(lines))
	for _, l := range lines {
		result.Lines = append(result.Lines, OrderLineToEntity(l))
	}
	result.Payments = make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		result.Payments = append(result.Payments, PaymentToEntity(p))
	}

	shipment, err := r.GetShipmentByOrder(ctx, orderID)
	if err != nil && !errors.Is(err, entities.ErrShipmentNotFound) {
		return entities.Order{}, err
	}
	if err == nil {
		result.Shipment = &shipment
	}

	return result, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"o.order_id", "o.account_id", "o.order_date", "o.total", "o.status", "o.notes", "o.created_at",
		customerNameExpr).
		From("orders o").
		LeftJoin("individual_profiles ip ON ip.account_id = o.account_id").
		LeftJoin("corporate_profiles cp ON cp.account_id = o.account_id").
		OrderBy("o.created_at DESC").
		MustSql()

	var orders []OrderWithCustomer
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order := OrderToEntity(o.Order)
		order.CustomerName = o.CustomerName
		result = append(result, order)
	}
	return result, nil
}

func (r *postgresRepo) ListOrdersByAccount(ctx context.Context, accountID int64) ([]entities.Order, error) {
	query, args := r.qb.Select("order_id", "account_id", "order_date", "total", "status", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}

func (r *postgresRepo) SetOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
