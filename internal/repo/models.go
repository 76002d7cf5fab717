package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercadodigital/commerce-service/internal/entities"
)

type Account struct {
	AccountID int64     `db:"account_id"`
	Kind      string    `db:"kind"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type IndividualProfile struct {
	ProfileID int64          `db:"profile_id"`
	AccountID int64          `db:"account_id"`
	Name      string         `db:"name"`
	Document  string         `db:"document"`
	IDCard    sql.NullString `db:"id_card"`
	BirthDate sql.NullTime   `db:"birth_date"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Address   sql.NullString `db:"address"`
}

type CorporateProfile struct {
	ProfileID         int64          `db:"profile_id"`
	AccountID         int64          `db:"account_id"`
	LegalName         string         `db:"legal_name"`
	TradeName         sql.NullString `db:"trade_name"`
	Document          string         `db:"document"`
	StateRegistration string         `db:"state_registration"`
	Email             sql.NullString `db:"email"`
	Phone             sql.NullString `db:"phone"`
	Address           sql.NullString `db:"address"`
}

type Product struct {
	ProductID   int64           `db:"product_id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	ImageURL    sql.NullString  `db:"image_url"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Order struct {
	OrderID   int64           `db:"order_id"`
	AccountID int64           `db:"account_id"`
	OrderDate time.Time       `db:"order_date"`
	Total     decimal.Decimal `db:"total"`
	Status    string          `db:"status"`
	Notes     sql.NullString  `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
}

// OrderWithCustomer is the admin listing row, joined with the profile name.
type OrderWithCustomer struct {
	Order
	CustomerName string `db:"customer_name"`
}

type OrderLine struct {
	LineID      int64           `db:"line_id"`
	OrderID     int64           `db:"order_id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Subtotal    decimal.Decimal `db:"subtotal"`
}

type Payment struct {
	PaymentID int64           `db:"payment_id"`
	OrderID   int64           `db:"order_id"`
	Kind      string          `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	Details   sql.NullString  `db:"details"`
}

type Shipment struct {
	ShipmentID        int64        `db:"shipment_id"`
	OrderID           int64        `db:"order_id"`
	TrackingCode      string       `db:"tracking_code"`
	Address           string       `db:"address"`
	Status            string       `db:"status"`
	EstimatedDelivery time.Time    `db:"estimated_delivery"`
	ShippedAt         sql.NullTime `db:"shipped_at"`
	DeliveredAt       sql.NullTime `db:"delivered_at"`
	ConfirmedAt       sql.NullTime `db:"confirmed_at"`
	CreatedAt         time.Time    `db:"created_at"`
}

type ShipmentWithCustomer struct {
	Shipment
	CustomerName string `db:"customer_name"`
}

func IndividualProfileToEntity(p IndividualProfile) *entities.IndividualProfile {
	return &entities.IndividualProfile{
		Name:      p.Name,
		Document:  p.Document,
		IDCard:    nullStringToString(p.IDCard),
		BirthDate: nullTimeToTime(p.BirthDate),
		Email:     nullStringToString(p.Email),
		Phone:     nullStringToString(p.Phone),
		Address:   nullStringToString(p.Address),
	}
}

func CorporateProfileToEntity(p CorporateProfile) *entities.CorporateProfile {
	return &entities.CorporateProfile{
		LegalName:         p.LegalName,
		TradeName:         nullStringToString(p.TradeName),
		Document:          p.Document,
		StateRegistration: p.StateRegistration,
		Email:             nullStringToString(p.Email),
		Phone:             nullStringToString(p.Phone),
		Address:           nullStringToString(p.Address),
	}
}

func CustomerToEntity(a Account, ip *IndividualProfile, cp *CorporateProfile) entities.Customer {
	c := entities.Customer{
		AccountID: a.AccountID,
		Kind:      entities.AccountKind(a.Kind),
		Status:    entities.AccountStatus(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if ip != nil {
		c.Individual = IndividualProfileToEntity(*ip)
	}
	if cp != nil {
		c.Corporate = CorporateProfileToEntity(*cp)
	}
	return c
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ProductID,
		Name:        p.Name,
		Category:    p.Category,
		Description: nullStringToString(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    nullStringToString(p.ImageURL),
		Status:      entities.ProductStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:        o.OrderID,
		AccountID: o.AccountID,
		OrderDate: o.OrderDate,
		Total:     o.Total,
		Status:    entities.OrderStatus(o.Status),
		Notes:     nullStringToString(o.Notes),
		CreatedAt: o.CreatedAt,
	}
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:          l.LineID,
		OrderID:     l.OrderID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Subtotal:    l.Subtotal,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:      p.PaymentID,
		OrderID: p.OrderID,
		Kind:    entities.PaymentKind(p.Kind),
		Amount:  p.Amount,
		Details: nullStringToString(p.Details),
	}
}

func ShipmentToEntity(s Shipment) entities.Shipment {
	return entities.Shipment{
		ID:                s.ShipmentID,
		OrderID:           s.OrderID,
		TrackingCode:      s.TrackingCode,
		Address:           s.Address,
		Status:            entities.ShipmentStatus(s.Status),
		EstimatedDelivery: s.EstimatedDelivery,
		ShippedAt:         nullTimeToPtr(s.ShippedAt),
		DeliveredAt:       nullTimeToPtr(s.DeliveredAt),
		ConfirmedAt:       nullTimeToPtr(s.ConfirmedAt),
		CreatedAt:         s.CreatedAt,
	}
}
