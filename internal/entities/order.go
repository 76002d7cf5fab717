package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusFinalized OrderStatus = "finalized"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentKind string

const (
	PaymentKindCash       PaymentKind = "cash"
	PaymentKindCreditCard PaymentKind = "credit_card"
	PaymentKindDebitCard  PaymentKind = "debit_card"
	PaymentKindPix        PaymentKind = "pix"
	PaymentKindBankSlip   PaymentKind = "bank_slip"
)

func (k PaymentKind) Valid() bool {
	switch k {
	case PaymentKindCash, PaymentKindCreditCard, PaymentKindDebitCard, PaymentKindPix, PaymentKindBankSlip:
		return true
	}
	return false
}

type Order struct {
	ID        int64
	AccountID int64
	OrderDate time.Time
	// Total is derived from the lines at placement time and never changes.
	Total     decimal.Decimal
	Status    OrderStatus
	Notes     string
	CreatedAt time.Time

	// CustomerName is filled on admin listings, joined from the profile.
	CustomerName string

	Lines    []OrderLine
	Payments []Payment
	Shipment *Shipment
}

// OrderLine captures the unit price at order time; later catalog price
// changes do not affect it.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type Payment struct {
	ID      int64
	OrderID int64
	Kind    PaymentKind
	Amount  decimal.Decimal
	// Details is the opaque serialized payment instruction as submitted.
	Details string
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
)
