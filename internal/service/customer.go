package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/pkg/trm"
)

type CustomerRepo interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomer(ctx context.Context, accountID int64) (entities.Customer, error)
	FindByDocument(ctx context.Context, kind entities.AccountKind, document string) (entities.CustomerSummary, error)
	CreateCustomer(ctx context.Context, nc entities.NewCustomer) (int64, error)
	UpdateCustomer(ctx context.Context, accountID int64, nc entities.NewCustomer) error
	DeleteCustomer(ctx context.Context, accountID int64) error
}

type customerService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CustomerRepo
}

func NewCustomerService(logger *slog.Logger, txManager trm.Manager, repo CustomerRepo) *customerService {
	return &customerService{
		logger:    logger.With(slog.String("service", "customer")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, accountID int64) (entities.Customer, error) {
	return s.repo.GetCustomer(ctx, accountID)
}

// FindByDocument is the pre-flight duplicate-document lookup; callers use it
// to offer "use existing account" before submitting checkout data.
func (s *customerService) FindByDocument(ctx context.Context, kind entities.AccountKind, document string) (entities.CustomerSummary, error) {
	if !kind.Valid() {
		return entities.CustomerSummary{}, fmt.Errorf("%w: unknown account kind %q", entities.ErrInvalidCustomer, kind)
	}
	if document == "" {
		return entities.CustomerSummary{}, fmt.Errorf("%w: document is required", entities.ErrInvalidCustomer)
	}
	return s.repo.FindByDocument(ctx, kind, document)
}

func (s *customerService) CreateCustomer(ctx context.Context, nc entities.NewCustomer) (int64, error) {
	if err := nc.Validate(); err != nil {
		return 0, err
	}

	existing, err := s.repo.FindByDocument(ctx, nc.Kind, nc.Document())
	if err == nil {
		return 0, &entities.DuplicateDocumentError{Existing: existing}
	}
	if !errors.Is(err, entities.ErrAccountNotFound) {
		return 0, fmt.Errorf("failed to check document: %w", err)
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
		return 0, err
	}

	s.logger.DebugContext(ctx, "customer created", slog.Int64("account_id", accountID))
	return accountID, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, accountID int64, nc entities.NewCustomer) error {
	if err := nc.Validate(); err != nil {
		return err
	}

	customer, err := s.repo.GetCustomer(ctx, accountID)
	if err != nil {
		return err
	}
	if customer.Kind != nc.Kind {
		return fmt.Errorf("%w: account kind cannot change", entities.ErrInvalidCustomer)
	}

	return s.repo.UpdateCustomer(ctx, accountID, nc)
}

func (s *customerService) DeleteCustomer(ctx context.Context, accountID int64) error {
	return s.repo.DeleteCustomer(ctx, accountID)
}
