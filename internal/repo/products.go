package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

var productColumns = []string{
	"product_id", "name", "category", "description",
	"price", "stock", "image_url", "status", "created_at", "updated_at",
}

func (r *postgresRepo) ListActiveProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"status": string(entities.ProductStatusActive)}).
		OrderBy("name").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) GetActiveProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"product_id": productID, "status": string(entities.ProductStatusActive)}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) (int64, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "category", "description", "price", "stock", "image_url").
		Values(p.Name, p.Category, nullString(p.Description), p.Price, p.Stock, nullString(p.ImageURL)).
		Suffix("RETURNING product_id").
		MustSql()

	var productID int64
	if err := r.getContext(ctx, &productID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return productID, nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("category", p.Category).
		Set("description", nullString(p.Description)).
		Set("price", p.Price).
		Set("stock", p.Stock).
		Set("image_url", nullString(p.ImageURL)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"product_id": p.ID, "status": string(entities.ProductStatusActive)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// CountProductReferences reports how many order lines reference the product,
// which decides soft versus hard delete.
func (r *postgresRepo) CountProductReferences(ctx context.Context, productID int64) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("order_lines").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count product references: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) DeactivateProduct(ctx context.Context, productID int64) error {
	query, args := r.qb.Update("products").
		Set("status", string(entities.ProductStatusInactive)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, productID int64) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
