package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

func (r *postgresRepo) CreateCustomer(ctx context.Context, nc entities.NewCustomer) (int64, error) {
	query, args := r.qb.Insert("accounts").
		Columns("kind", "status").
		Values(string(nc.Kind), string(entities.AccountStatusActive)).
		Suffix("RETURNING account_id").
		MustSql()

	var accountID int64
	if err := r.getContext(ctx, &accountID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	switch nc.Kind {
	case entities.AccountKindIndividual:
		p := nc.Individual
		query, args = r.qb.Insert("individual_profiles").
			Columns("account_id", "name", "document", "id_card", "birth_date", "email", "phone", "address").
			Values(accountID, p.Name, p.Document,
				nullString(p.IDCard), nullTime(p.BirthDate),
				nullString(p.Email), nullString(p.Phone), nullString(p.Address)).
			MustSql()
	case entities.AccountKindCorporate:
		p := nc.Corporate
		query, args = r.qb.Insert("corporate_profiles").
			Columns("account_id", "legal_name", "trade_name", "document", "state_registration", "email", "phone", "address").
			Values(accountID, p.LegalName, nullString(p.TradeName), p.Document, p.StateRegistration,
				nullString(p.Email), nullString(p.Phone), nullString(p.Address)).
			MustSql()
	default:
		return 0, fmt.Errorf("%w: unknown account kind %q", entities.ErrInvalidCustomer, nc.Kind)
	}

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert profile: %w", err)
	}
	return accountID, nil
}

func (r *postgresRepo) FindByDocument(ctx context.Context, kind entities.AccountKind, document string) (entities.CustomerSummary, error) {
	var builder sq.SelectBuilder
	switch kind {
	case entities.AccountKindIndividual:
		builder = r.qb.Select("a.account_id", "a.kind", "p.name", "p.email", "p.phone").
			From("individual_profiles p").
			Join("accounts a ON a.account_id = p.account_id")
	case entities.AccountKindCorporate:
		builder = r.qb.Select("a.account_id", "a.kind", "p.legal_name AS name", "p.email", "p.phone").
			From("corporate_profiles p").
			Join("accounts a ON a.account_id = p.account_id")
	default:
		return entities.CustomerSummary{}, fmt.Errorf("%w: unknown account kind %q", entities.ErrInvalidCustomer, kind)
	}

	query, args := builder.Where(sq.Eq{"p.document": document}).MustSql()

	var row struct {
		AccountID int64          `db:"account_id"`
		Kind      string         `db:"kind"`
		Name      string         `db:"name"`
		Email     sql.NullString `db:"email"`
		Phone     sql.NullString `db:"phone"`
	}
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CustomerSummary{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.CustomerSummary{}, fmt.Errorf("failed to find customer by document: %w", err)
	}

	return entities.CustomerSummary{
		AccountID: row.AccountID,
		Kind:      entities.AccountKind(row.Kind),
		Name:      row.Name,
		Email:     nullStringToString(row.Email),
		Phone:     nullStringToString(row.Phone),
	}, nil
}

func (r *postgresRepo) GetCustomer(ctx context.Context, accountID int64) (entities.Customer, error) {
	query, args := r.qb.Select("account_id", "kind", "status", "created_at").
		From("accounts").
		Where(sq.Eq{"account_id": accountID}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get account: %w", err)
	}

	switch entities.AccountKind(account.Kind) {
	case entities.AccountKindIndividual:
		query, args = r.qb.Select("profile_id", "account_id", "name", "document", "id_card", "birth_date", "email", "phone", "address").
			From("individual_profiles").
			Where(sq.Eq{"account_id": accountID}).
			MustSql()

		var profile IndividualProfile
		if err := r.getContext(ctx, &profile, query, args...); err != nil {
			return entities.Customer{}, fmt.Errorf("failed to get individual profile: %w", err)
		}
		return CustomerToEntity(account, &profile, nil), nil
	default:
		query, args = r.qb.Select("profile_id", "account_id", "legal_name", "trade_name", "document", "state_registration", "email", "phone", "address").
			From("corporate_profiles").
			Where(sq.Eq{"account_id": accountID}).
			MustSql()

		var profile CorporateProfile
		if err := r.getContext(ctx, &profile, query, args...); err != nil {
			return entities.Customer{}, fmt.Errorf("failed to get corporate profile: %w", err)
		}
		return CustomerToEntity(account, nil, &profile), nil
	}
}

func (r *postgresRepo) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	query, args := r.qb.Select("account_id", "kind", "status", "created_at").
		From("accounts").
		OrderBy("created_at DESC").
		MustSql()

	var accounts []Account
	if err := r.selectContext(ctx, &accounts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	if len(accounts) == 0 {
		return []entities.Customer{}, nil
	}

	ids := make([]int64, len(accounts))
	for i, a := range accounts {
		ids[i] = a.AccountID
	}

	query, args = r.qb.Select("profile_id", "account_id", "name", "document", "id_card", "birth_date", "email", "phone", "address").
		From("individual_profiles").
		Where(sq.Eq{"account_id": ids}).
		MustSql()

	var individuals []IndividualProfile
	if err := r.selectContext(ctx, &individuals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select individual profiles: %w", err)
	}
	individualMap := make(map[int64]IndividualProfile, len(individuals))
	for _, p := range individuals {
		individualMap[p.AccountID] = p
	}

	query, args = r.qb.Select("profile_id", "account_id", "legal_name", "trade_name", "document", "state_registration", "email", "phone", "address").
		From("corporate_profiles").
		Where(sq.Eq{"account_id": ids}).
		MustSql()

	var corporates []CorporateProfile
	if err := r.selectContext(ctx, &corporates, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select corporate profiles: %w", err)
	}
	corporateMap := make(map[int64]CorporateProfile, len(corporates))
	for _, p := range corporates {
		corporateMap[p.AccountID] = p
	}

	result := make([]entities.Customer, 0, len(accounts))
	for _, a := range accounts {
		var ip *IndividualProfile
		var cp *CorporateProfile
		if p, ok := individualMap[a.AccountID]; ok {
			ip = &p
		}
		if p, ok := corporateMap[a.AccountID]; ok {
			cp = &p
		}
		result = append(result, CustomerToEntity(a, ip, cp))
	}
	return result, nil
}

func (r *postgresRepo) UpdateCustomer(ctx context.Context, accountID int64, nc entities.NewCustomer) error {
	var query string
	var args []any

	switch nc.Kind {
	case entities.AccountKindIndividual:
		p := nc.Individual
		query, args = r.qb.Update("individual_profiles").
			Set("name", p.Name).
			Set("document", p.Document).
			Set("id_card", nullString(p.IDCard)).
			Set("birth_date", nullTime(p.BirthDate)).
			Set("email", nullString(p.Email)).
			Set("phone", nullString(p.Phone)).
			Set("address", nullString(p.Address)).
			Where(sq.Eq{"account_id": accountID}).
			MustSql()
	case entities.AccountKindCorporate:
		p := nc.Corporate
		query, args = r.qb.Update("corporate_profiles").
			Set("legal_name", p.LegalName).
			Set("trade_name", nullString(p.TradeName)).
			Set("document", p.Document).
			Set("state_registration", p.StateRegistration).
			Set("email", nullString(p.Email)).
			Set("phone", nullString(p.Phone)).
			Set("address", nullString(p.Address)).
			Where(sq.Eq{"account_id": accountID}).
			MustSql()
	default:
		return fmt.Errorf("%w: unknown account kind %q", entities.ErrInvalidCustomer, nc.Kind)
	}

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrAccountNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteCustomer(ctx context.Context, accountID int64) error {
	// Profiles cascade on the account FK.
	query, args := r.qb.Delete("accounts").
		Where(sq.Eq{"account_id": accountID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrAccountNotFound
	}
	return nil
}
