package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/service"
	mocks "github.com/mercadodigital/commerce-service/internal/service/mocks"
	txMocks "github.com/mercadodigital/commerce-service/pkg/trm/mocks"
)

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	orderDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	existingCustomer := entities.Customer{
		AccountID: 42,
		Kind:      entities.AccountKindIndividual,
		Status:    entities.AccountStatusActive,
		Individual: &entities.IndividualProfile{
			Name:     "Maria Souza",
			Document: "12345678901",
			Address:  "Rua das Flores 100",
		},
	}
	keyboard := entities.Product{ID: 1, Name: "Keyboard", Price: decimal.NewFromFloat(150.50)}
	mouse := entities.Product{ID: 2, Name: "Mouse", Price: decimal.NewFromFloat(49.90)}

	validInput := service.PlaceOrderInput{
		AccountID: 42,
		OrderDate: orderDate,
		Lines: []service.LineRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		Payments: []service.PaymentRequest{
			{Kind: entities.PaymentKindPix, Amount: decimal.NewFromFloat(350.90)},
		},
	}

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		input        service.PlaceOrderInput
		mockBehavior func(repo *mocks.MockCheckoutRepo)
		wantErr      error
		check        func(t *testing.T, result service.PlaceOrderResult)
	}{
		{
			name:  "places order with priced lines and shipment",
			input: validInput,
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().GetCustomer(mock.Anything, int64(42)).Return(existingCustomer, nil).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).Return(keyboard, nil).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(2)).Return(mouse, nil).Once()
				repo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.AccountID == 42 &&
						o.Status == entities.OrderStatusPending &&
						o.Total.Equal(decimal.NewFromFloat(350.90))
				})).Return(int64(7), nil).Once()
				repo.EXPECT().SaveOrderLines(mock.Anything, int64(7), mock.MatchedBy(func(lines []entities.OrderLine) bool {
					return len(lines) == 2 &&
						lines[0].UnitPrice.Equal(keyboard.Price) &&
						lines[0].Subtotal.Equal(decimal.NewFromFloat(301.00)) &&
						lines[1].Subtotal.Equal(mouse.Price)
				})).Return(nil).Once()
				repo.EXPECT().SavePayments(mock.Anything, int64(7), mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveShipment(mock.Anything, mock.MatchedBy(func(s entities.Shipment) bool {
					return s.OrderID == 7 &&
						s.Status == entities.ShipmentStatusPreparing &&
						s.Address == "Rua das Flores 100" &&
						s.EstimatedDelivery.Equal(orderDate.AddDate(0, 0, 7))
				})).Return(int64(3), nil).Once()
			},
			check: func(t *testing.T, result service.PlaceOrderResult) {
				assert.Equal(t, int64(7), result.OrderID)
				assert.Regexp(t, `^BR[0-9A-Z]{11}$`, result.TrackingCode)
			},
		},
		{
			name:  "unknown product aborts without retrying",
			input: validInput,
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().GetCustomer(mock.Anything, int64(42)).Return(existingCustomer, nil).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(1)).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "unknown account",
			input: validInput,
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().GetCustomer(mock.Anything, int64(42)).
					Return(entities.Customer{}, entities.ErrAccountNotFound).Once()
			},
			wantErr: entities.ErrAccountNotFound,
		},
		{
			name: "registers new customer inline",
			input: service.PlaceOrderInput{
				NewCustomer: &entities.NewCustomer{
					Kind: entities.AccountKindIndividual,
					Individual: &entities.IndividualProfile{
						Name:     "Joao Lima",
						Document: "98765432100",
					},
				},
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 2, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.NewFromFloat(49.90)}},
			},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().FindByDocument(mock.Anything, entities.AccountKindIndividual, "98765432100").
					Return(entities.CustomerSummary{}, entities.ErrAccountNotFound).Once()
				repo.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(int64(99), nil).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, int64(2)).Return(mouse, nil).Once()
				repo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.AccountID == 99
				})).Return(int64(8), nil).Once()
				repo.EXPECT().SaveOrderLines(mock.Anything, int64(8), mock.Anything).Return(nil).Once()
				repo.EXPECT().SavePayments(mock.Anything, int64(8), mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveShipment(mock.Anything, mock.MatchedBy(func(s entities.Shipment) bool {
					return s.Address == "address not provided"
				})).Return(int64(4), nil).Once()
			},
			check: func(t *testing.T, result service.PlaceOrderResult) {
				assert.Equal(t, int64(8), result.OrderID)
			},
		},
		{
			name: "duplicate document short-circuits checkout",
			input: service.PlaceOrderInput{
				NewCustomer: &entities.NewCustomer{
					Kind: entities.AccountKindIndividual,
					Individual: &entities.IndividualProfile{
						Name:     "Maria Souza",
						Document: "12345678901",
					},
				},
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindPix, Amount: decimal.NewFromFloat(150.50)}},
			},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().FindByDocument(mock.Anything, entities.AccountKindIndividual, "12345678901").
					Return(entities.CustomerSummary{AccountID: 42, Name: "Maria Souza"}, nil).Once()
			},
			wantErr: &entities.DuplicateDocumentError{},
		},
		{
			name:  "retry recovers from a transient save failure",
			input: validInput,
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().GetCustomer(mock.Anything, int64(42)).Return(existingCustomer, nil).Once()
				repo.EXPECT().GetActiveProduct(mock.Anything, mock.Anything).Return(keyboard, nil)
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Once().Return(int64(0), dbError)
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Once().Return(int64(7), nil)
				repo.EXPECT().SaveOrderLines(mock.Anything, int64(7), mock.Anything).Return(nil).Once()
				repo.EXPECT().SavePayments(mock.Anything, int64(7), mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(int64(3), nil).Once()
			},
			check: func(t *testing.T, result service.PlaceOrderResult) {
				assert.Equal(t, int64(7), result.OrderID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo)

			svc := service.NewCheckoutService(logger, tx, repo)

			result, err := svc.PlaceOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				var dup *entities.DuplicateDocumentError
				if errors.As(tc.wantErr, &dup) {
					assert.ErrorAs(t, err, &dup)
					assert.Equal(t, int64(42), dup.Existing.AccountID)
					return
				}
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, result)
			}
		})
	}
}

func TestCheckoutService_PlaceOrder_Validation(t *testing.T) {
	orderDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		input service.PlaceOrderInput
	}{
		{
			name: "no customer reference",
			input: service.PlaceOrderInput{
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.NewFromInt(10)}},
			},
		},
		{
			name: "no lines",
			input: service.PlaceOrderInput{
				AccountID: 1,
				OrderDate: orderDate,
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.NewFromInt(10)}},
			},
		},
		{
			name: "zero quantity",
			input: service.PlaceOrderInput{
				AccountID: 1,
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 0}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.NewFromInt(10)}},
			},
		},
		{
			name: "no payments",
			input: service.PlaceOrderInput{
				AccountID: 1,
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
			},
		},
		{
			name: "unknown payment kind",
			input: service.PlaceOrderInput{
				AccountID: 1,
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: "barter", Amount: decimal.NewFromInt(10)}},
			},
		},
		{
			name: "non-positive payment amount",
			input: service.PlaceOrderInput{
				AccountID: 1,
				OrderDate: orderDate,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.Zero}},
			},
		},
		{
			name: "missing order date",
			input: service.PlaceOrderInput{
				AccountID: 1,
				Lines:     []service.LineRequest{{ProductID: 1, Quantity: 1}},
				Payments:  []service.PaymentRequest{{Kind: entities.PaymentKindCash, Amount: decimal.NewFromInt(10)}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			svc := service.NewCheckoutService(logger, tx, repo)

			_, err := svc.PlaceOrder(context.Background(), tc.input)
			assert.ErrorIs(t, err, entities.ErrInvalidOrder)
		})
	}
}
