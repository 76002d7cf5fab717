package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/repo"
	"github.com/mercadodigital/commerce-service/internal/service"
	"github.com/mercadodigital/commerce-service/pkg/trm"
)

// These tests run the services against the real repo and transaction manager
// over a mocked connection, so the Begin/Commit/Rollback sequence around the
// multi-write operations is visible.

const (
	getShipmentQuery     = "SELECT shipment_id, order_id, tracking_code, address, status, estimated_delivery, shipped_at, delivered_at, confirmed_at, created_at FROM shipments WHERE shipment_id = $1"
	confirmShipmentQuery = "UPDATE shipments SET status = $1, confirmed_at = $2 WHERE shipment_id = $3"
	setOrderStatusQuery  = "UPDATE orders SET status = $1 WHERE order_id = $2"
)

func newSQLFixture(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func deliveredShipmentRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"shipment_id", "order_id", "tracking_code", "address", "status",
		"estimated_delivery", "shipped_at", "delivered_at", "confirmed_at", "created_at",
	}).AddRow(int64(7), int64(42), "BR4F9K2M1P8QX", "Rua das Flores 100", "delivered",
		now.AddDate(0, 0, 7), now, now, nil, now)
}

func TestShipmentService_ConfirmReceipt_SingleTransaction(t *testing.T) {
	now := time.Now()

	t.Run("shipment and order update commit together", func(t *testing.T) {
		db, mock := newSQLFixture(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewShipmentService(logger, trm.NewManager(db), repo.NewPostgresRepo(db))

		mock.ExpectBegin()
		mock.ExpectQuery(getShipmentQuery).
			WithArgs(int64(7)).
			WillReturnRows(deliveredShipmentRows(now))
		mock.ExpectExec(confirmShipmentQuery).
			WithArgs("confirmed", sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(setOrderStatusQuery).
			WithArgs("finalized", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := svc.ConfirmReceipt(context.Background(), 7)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order update failure rolls back the confirmation", func(t *testing.T) {
		db, mock := newSQLFixture(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewShipmentService(logger, trm.NewManager(db), repo.NewPostgresRepo(db))

		mock.ExpectBegin()
		mock.ExpectQuery(getShipmentQuery).
			WithArgs(int64(7)).
			WillReturnRows(deliveredShipmentRows(now))
		mock.ExpectExec(confirmShipmentQuery).
			WithArgs("confirmed", sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(setOrderStatusQuery).
			WithArgs("finalized", int64(42)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := svc.ConfirmReceipt(context.Background(), 7)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckoutService_PlaceOrder_RollsBackOnPersistFailure(t *testing.T) {
	db, mock := newSQLFixture(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCheckoutService(logger, trm.NewManager(db), repo.NewPostgresRepo(db))

	now := time.Now()

	mock.ExpectQuery("SELECT account_id, kind, status, created_at FROM accounts WHERE account_id = $1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "kind", "status", "created_at"}).
			AddRow(int64(42), "individual", "active", now))
	mock.ExpectQuery("SELECT profile_id, account_id, name, document, id_card, birth_date, email, phone, address FROM individual_profiles WHERE account_id = $1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"profile_id", "account_id", "name", "document",
			"id_card", "birth_date", "email", "phone", "address",
		}).AddRow(int64(1), int64(42), "Maria Souza", "12345678901", nil, nil, nil, nil, "Rua das Flores 100"))

	// Every attempt opens a transaction, gets as far as the payments insert
	// and must roll back what it already wrote.
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT product_id, name, category, description, price, stock, image_url, status, created_at, updated_at FROM products WHERE product_id = $1 AND status = $2").
			WithArgs(int64(1), "active").
			WillReturnRows(sqlmock.NewRows([]string{
				"product_id", "name", "category", "description",
				"price", "stock", "image_url", "status", "created_at", "updated_at",
			}).AddRow(int64(1), "Keyboard", "peripherals", nil, "150.50", 12, nil, "active", now, now))
		mock.ExpectQuery("INSERT INTO orders (account_id,order_date,total,status,notes) VALUES ($1,$2,$3,$4,$5) RETURNING order_id").
			WithArgs(int64(42), sqlmock.AnyArg(), sqlmock.AnyArg(), "pending", nil).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(77)))
		mock.ExpectExec("INSERT INTO order_lines (order_id,product_id,quantity,unit_price,subtotal) VALUES ($1,$2,$3,$4,$5)").
			WithArgs(int64(77), int64(1), 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO payments (order_id,kind,amount,details) VALUES ($1,$2,$3,$4)").
			WithArgs(int64(77), "pix", sqlmock.AnyArg(), nil).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()
	}

	_, err := svc.PlaceOrder(context.Background(), service.PlaceOrderInput{
		AccountID: 42,
		OrderDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Lines:     []service.LineRequest{{ProductID: 1, Quantity: 2}},
		Payments: []service.PaymentRequest{{
			Kind:   entities.PaymentKindPix,
			Amount: decimal.NewFromInt(301),
		}},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
