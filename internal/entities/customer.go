package entities

import (
	"errors"
	"fmt"
	"time"
)

type AccountKind string

const (
	AccountKindIndividual AccountKind = "individual"
	AccountKindCorporate  AccountKind = "corporate"
)

func (k AccountKind) Valid() bool {
	return k == AccountKindIndividual || k == AccountKindCorporate
}

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

// IndividualProfile holds the personal customer data (CPF owner).
type IndividualProfile struct {
	Name      string
	Document  string
	IDCard    string
	BirthDate time.Time
	Email     string
	Phone     string
	Address   string
}

// CorporateProfile holds the company customer data (CNPJ owner).
type CorporateProfile struct {
	LegalName         string
	TradeName         string
	Document          string
	StateRegistration string
	Email             string
	Phone             string
	Address           string
}

// Customer is an account with exactly one profile attached, matching Kind.
type Customer struct {
	AccountID int64
	Kind      AccountKind
	Status    AccountStatus
	CreatedAt time.Time

	Individual *IndividualProfile
	Corporate  *CorporateProfile
}

func (c Customer) DisplayName() string {
	switch c.Kind {
	case AccountKindIndividual:
		if c.Individual != nil {
			return c.Individual.Name
		}
	case AccountKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.LegalName
		}
	}
	return ""
}

func (c Customer) Document() string {
	switch c.Kind {
	case AccountKindIndividual:
		if c.Individual != nil {
			return c.Individual.Document
		}
	case AccountKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.Document
		}
	}
	return ""
}

func (c Customer) Email() string {
	switch c.Kind {
	case AccountKindIndividual:
		if c.Individual != nil {
			return c.Individual.Email
		}
	case AccountKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.Email
		}
	}
	return ""
}

func (c Customer) Phone() string {
	switch c.Kind {
	case AccountKindIndividual:
		if c.Individual != nil {
			return c.Individual.Phone
		}
	case AccountKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.Phone
		}
	}
	return ""
}

func (c Customer) ShippingAddress() string {
	switch c.Kind {
	case AccountKindIndividual:
		if c.Individual != nil {
			return c.Individual.Address
		}
	case AccountKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.Address
		}
	}
	return ""
}

// CustomerSummary is the payload returned by document lookups, enough for the
// caller to redirect checkout to the existing account.
type CustomerSummary struct {
	AccountID int64
	Kind      AccountKind
	Name      string
	Email     string
	Phone     string
}

// NewCustomer describes a customer to be registered, either by the admin panel
// or inline during checkout. Exactly one profile must be set, matching Kind.
type NewCustomer struct {
	Kind       AccountKind
	Individual *IndividualProfile
	Corporate  *CorporateProfile
}

func (n NewCustomer) Validate() error {
	if !n.Kind.Valid() {
		return fmt.Errorf("%w: unknown account kind %q", ErrInvalidCustomer, n.Kind)
	}
	switch n.Kind {
	case AccountKindIndividual:
		if n.Individual == nil || n.Corporate != nil {
			return fmt.Errorf("%w: individual account requires exactly the individual profile", ErrInvalidCustomer)
		}
		if n.Individual.Name == "" || n.Individual.Document == "" {
			return fmt.Errorf("%w: name and document are required", ErrInvalidCustomer)
		}
	case AccountKindCorporate:
		if n.Corporate == nil || n.Individual != nil {
			return fmt.Errorf("%w: corporate account requires exactly the corporate profile", ErrInvalidCustomer)
		}
		if n.Corporate.LegalName == "" || n.Corporate.Document == "" || n.Corporate.StateRegistration == "" {
			return fmt.Errorf("%w: legal name, document and state registration are required", ErrInvalidCustomer)
		}
	}
	return nil
}

func (n NewCustomer) Document() string {
	switch n.Kind {
	case AccountKindIndividual:
		if n.Individual != nil {
			return n.Individual.Document
		}
	case AccountKindCorporate:
		if n.Corporate != nil {
			return n.Corporate.Document
		}
	}
	return ""
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidCustomer = errors.New("invalid customer data")
)

// DuplicateDocumentError reports that the submitted tax document already
// belongs to a registered account. It carries the existing customer so the
// caller can offer the "use existing account" branch instead of failing flat.
type DuplicateDocumentError struct {
	Existing CustomerSummary
}

func (e *DuplicateDocumentError) Error() string {
	return fmt.Sprintf("document already registered to account %d", e.Existing.AccountID)
}
