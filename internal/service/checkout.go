package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/pkg/trm"
	"github.com/mercadodigital/commerce-service/pkg/utils"
)

// CheckoutRepo covers everything order placement touches: customer
// resolution, in-transaction pricing reads and the atomic write sequence.
type CheckoutRepo interface {
	FindByDocument(ctx context.Context, kind entities.AccountKind, document string) (entities.CustomerSummary, error)
	CreateCustomer(ctx context.Context, nc entities.NewCustomer) (int64, error)
	GetCustomer(ctx context.Context, accountID int64) (entities.Customer, error)
	GetActiveProduct(ctx context.Context, productID int64) (entities.Product, error)

	SaveOrder(ctx context.Context, o entities.Order) (int64, error)
	SaveOrderLines(ctx context.Context, orderID int64, lines []entities.OrderLine) error
	SavePayments(ctx context.Context, orderID int64, payments []entities.Payment) error
	SaveShipment(ctx context.Context, s entities.Shipment) (int64, error)
}

type LineRequest struct {
	ProductID int64
	Quantity  int
}

type PaymentRequest struct {
	Kind   entities.PaymentKind
	Amount decimal.Decimal
	// Details carries the serialized payment instruction verbatim.
	Details string
}

type PlaceOrderInput struct {
	// AccountID references an existing account; zero when NewCustomer is set.
	AccountID   int64
	NewCustomer *entities.NewCustomer
	OrderDate   time.Time
	Lines       []LineRequest
	Payments    []PaymentRequest
	Notes       string
}

func (in PlaceOrderInput) validate() error {
	if in.AccountID == 0 && in.NewCustomer == nil {
		return fmt.Errorf("%w: account reference or customer data is required", entities.ErrInvalidOrder)
	}
	if in.OrderDate.IsZero() {
		return fmt.Errorf("%w: order date is required", entities.ErrInvalidOrder)
	}
	if len(in.Lines) == 0 {
		return fmt.Errorf("%w: at least one line is required", entities.ErrInvalidOrder)
	}
	for _, l := range in.Lines {
		if l.ProductID <= 0 || l.Quantity <= 0 {
			return fmt.Errorf("%w: every line needs a product and a positive quantity", entities.ErrInvalidOrder)
		}
	}
	if len(in.Payments) == 0 {
		return fmt.Errorf("%w: at least one payment is required", entities.ErrInvalidOrder)
	}
	for _, p := range in.Payments {
		if !p.Kind.Valid() {
			return fmt.Errorf("%w: unknown payment kind %q", entities.ErrInvalidOrder, p.Kind)
		}
		if !p.Amount.IsPositive() {
			return fmt.Errorf("%w: payment amount must be positive", entities.ErrInvalidOrder)
		}
	}
	return nil
}

type PlaceOrderResult struct {
	OrderID      int64
	TrackingCode string
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CheckoutRepo
}

func NewCheckoutService(logger *slog.Logger, txManager trm.Manager, repo CheckoutRepo) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
	}
}

// PlaceOrder turns a cart into a persisted order: it resolves or registers
// the account, prices every line from the catalog inside the transaction,
// and writes the order header, lines, payments and the initial shipment as
// one atomic unit. The returned tracking code identifies the shipment.
func (s *checkoutService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	if err := in.validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	// Customer resolution happens before the order transaction opens; a
	// duplicate document is a negative answer the caller can act on, not a
	// rollback.
	customer, err := s.resolveCustomer(ctx, in)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	address := customer.ShippingAddress()
	if address == "" {
		address = "address not provided"
	}

	var result PlaceOrderResult
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			lines := make([]entities.OrderLine, 0, len(in.Lines))
			total := decimal.Zero
			for _, req := range in.Lines {
				product, err := s.repo.GetActiveProduct(ctx, req.ProductID)
				if err != nil {
					return fmt.Errorf("failed to price line for product %d: %w", req.ProductID, err)
				}
				subtotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
				lines = append(lines, entities.OrderLine{
					ProductID: product.ID,
					Quantity:  req.Quantity,
					UnitPrice: product.Price,
					Subtotal:  subtotal,
				})
				total = total.Add(subtotal)
			}

			orderID, err := s.repo.SaveOrder(ctx, entities.Order{
				AccountID: customer.AccountID,
				OrderDate: in.OrderDate,
				Total:     total,
				Status:    entities.OrderStatusPending,
				Notes:     in.Notes,
			})
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}

			if err := s.repo.SaveOrderLines(ctx, orderID, lines); err != nil {
				return fmt.Errorf("failed to save order lines: %w", err)
			}

			payments := make([]entities.Payment, 0, len(in.Payments))
			for _, p := range in.Payments {
				payments = append(payments, entities.Payment{
					Kind:    p.Kind,
					Amount:  p.Amount,
					Details: p.Details,
				})
			}
			if err := s.repo.SavePayments(ctx, orderID, payments); err != nil {
				return fmt.Errorf("failed to save payments: %w", err)
			}

			trackingCode := entities.NewTrackingCode()
			if _, err := s.repo.SaveShipment(ctx, entities.Shipment{
				OrderID:           orderID,
				TrackingCode:      trackingCode,
				Address:           address,
				Status:            entities.ShipmentStatusPreparing,
				EstimatedDelivery: in.OrderDate.AddDate(0, 0, entities.DeliveryEstimateDays),
			}); err != nil {
				return fmt.Errorf("failed to save shipment: %w", err)
			}

			result = PlaceOrderResult{OrderID: orderID, TrackingCode: trackingCode}
			s.logger.DebugContext(ctx, "order placed",
				slog.Int64("order_id", orderID),
				slog.String("tracking_code", trackingCode),
				slog.String("total", total.String()),
			)
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrProductNotFound); err != nil {
		return PlaceOrderResult{}, err
	}
	return result, nil
}

func (s *checkoutService) resolveCustomer(ctx context.Context, in PlaceOrderInput) (entities.Customer, error) {
	if in.NewCustomer == nil {
		customer, err := s.repo.GetCustomer(ctx, in.AccountID)
		if err != nil {
			return entities.Customer{}, fmt.Errorf("failed to resolve account %d: %w", in.AccountID, err)
		}
		return customer, nil
	}

	nc := *in.NewCustomer
	if err := nc.Validate(); err != nil {
		return entities.Customer{}, err
	}

	existing, err := s.repo.FindByDocument(ctx, nc.Kind, nc.Document())
	if err == nil {
		return entities.Customer{}, &entities.DuplicateDocumentError{Existing: existing}
	}
	if !errors.Is(err, entities.ErrAccountNotFound) {
		return entities.Customer{}, fmt.Errorf("failed to check document: %w", err)
	}

	var accountID int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repo.CreateCustomer(ctx, nc)
		if err != nil {
			return err
		}
		accountID = id
		return nil
	})
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to register customer: %w", err)
	}

	customer := entities.Customer{
		AccountID:  accountID,
		Kind:       nc.Kind,
		Status:     entities.AccountStatusActive,
		Individual: nc.Individual,
		Corporate:  nc.Corporate,
	}
	s.logger.DebugContext(ctx, "customer registered at checkout", slog.Int64("account_id", accountID))
	return customer, nil
}
