package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

func (r *postgresRepo) GetDashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	stats := entities.DashboardStats{
		CustomersByKind: make(map[entities.AccountKind]int),
		OrdersByStatus:  make(map[entities.OrderStatus]int),
	}

	query, args := r.qb.Select("COUNT(*)").
		From("accounts").
		Where(sq.Eq{"status": string(entities.AccountStatusActive)}).
		MustSql()
	if err := r.getContext(ctx, &stats.TotalCustomers, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count customers: %w", err)
	}

	query, args = r.qb.Select("COUNT(*)").
		From("products").
		Where(sq.Eq{"status": string(entities.ProductStatusActive)}).
		MustSql()
	if err := r.getContext(ctx, &stats.TotalProducts, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count products: %w", err)
	}

	query, args = r.qb.Select("COUNT(*)").From("orders").MustSql()
	if err := r.getContext(ctx, &stats.TotalOrders, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = r.qb.Select("COUNT(*)").
		From("shipments").
		Where(sq.NotEq{"status": []string{
			string(entities.ShipmentStatusDelivered),
			string(entities.ShipmentStatusConfirmed),
		}}).
		MustSql()
	if err := r.getContext(ctx, &stats.OpenShipments, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count open shipments: %w", err)
	}

	query, args = r.qb.Select("kind", "COUNT(*) AS total").
		From("accounts").
		Where(sq.Eq{"status": string(entities.AccountStatusActive)}).
		GroupBy("kind").
		MustSql()

	var kindRows []struct {
		Kind  string `db:"kind"`
		Total int    `db:"total"`
	}
	if err := r.selectContext(ctx, &kindRows, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to group customers by kind: %w", err)
	}
	for _, row := range kindRows {
		stats.CustomersByKind[entities.AccountKind(row.Kind)] = row.Total
	}

	query, args = r.qb.Select("status", "COUNT(*) AS total").
		From("orders").
		GroupBy("status").
		MustSql()

	var statusRows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}
	if err := r.selectContext(ctx, &statusRows, query, args...); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to group orders by status: %w", err)
	}
	for _, row := range statusRows {
		stats.OrdersByStatus[entities.OrderStatus(row.Status)] = row.Total
	}

	return stats, nil
}
