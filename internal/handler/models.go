package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercadodigital/commerce-service/internal/entities"
	"github.com/mercadodigital/commerce-service/internal/service"
)

const dateLayout = "2006-01-02"

// NewCustomerRequest carries the fields of both profile kinds; the service
// checks the per-kind required set.
type NewCustomerRequest struct {
	Kind string `json:"kind" validate:"required,oneof=individual corporate"`

	Name      string `json:"name,omitempty"`
	IDCard    string `json:"id_card,omitempty"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	LegalName         string `json:"legal_name,omitempty"`
	TradeName         string `json:"trade_name,omitempty"`
	StateRegistration string `json:"state_registration,omitempty"`

	Document string `json:"document" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func NewCustomerJSONToEntity(r NewCustomerRequest) (entities.NewCustomer, error) {
	nc := entities.NewCustomer{Kind: entities.AccountKind(r.Kind)}

	switch nc.Kind {
	case entities.AccountKindIndividual:
		var birthDate time.Time
		if r.BirthDate != "" {
			var err error
			birthDate, err = time.Parse(dateLayout, r.BirthDate)
			if err != nil {
				return entities.NewCustomer{}, fmt.Errorf("%w: invalid birth date", entities.ErrInvalidCustomer)
			}
		}
		nc.Individual = &entities.IndividualProfile{
			Name:      r.Name,
			Document:  r.Document,
			IDCard:    r.IDCard,
			BirthDate: birthDate,
			Email:     r.Email,
			Phone:     r.Phone,
			Address:   r.Address,
		}
	case entities.AccountKindCorporate:
		nc.Corporate = &entities.CorporateProfile{
			LegalName:         r.LegalName,
			TradeName:         r.TradeName,
			Document:          r.Document,
			StateRegistration: r.StateRegistration,
			Email:             r.Email,
			Phone:             r.Phone,
			Address:           r.Address,
		}
	}
	return nc, nil
}

// CustomerResponse flattens the account and its profile, discriminated by kind.
type CustomerResponse struct {
	AccountID int64     `json:"account_id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Name      string `json:"name,omitempty"`
	IDCard    string `json:"id_card,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`

	LegalName         string `json:"legal_name,omitempty"`
	TradeName         string `json:"trade_name,omitempty"`
	StateRegistration string `json:"state_registration,omitempty"`

	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func CustomerEntityToJSON(c entities.Customer) CustomerResponse {
	res := CustomerResponse{
		AccountID: c.AccountID,
		Kind:      string(c.Kind),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		Document:  c.Document(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.ShippingAddress(),
	}
	if c.Individual != nil {
		res.Name = c.Individual.Name
		res.IDCard = c.Individual.IDCard
		if !c.Individual.BirthDate.IsZero() {
			res.BirthDate = c.Individual.BirthDate.Format(dateLayout)
		}
	}
	if c.Corporate != nil {
		res.LegalName = c.Corporate.LegalName
		res.TradeName = c.Corporate.TradeName
		res.StateRegistration = c.Corporate.StateRegistration
	}
	return res
}

type CustomerSummaryResponse struct {
	AccountID int64  `json:"account_id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func CustomerSummaryEntityToJSON(s entities.CustomerSummary) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		AccountID: s.AccountID,
		Kind:      string(s.Kind),
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
	}
}

// DuplicateDocumentResponse tells the caller which account already owns the
// submitted document so checkout can be retried against it.
type DuplicateDocumentResponse struct {
	Message  string                  `json:"message"`
	Existing CustomerSummaryResponse `json:"existing_customer"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

func ProductJSONToEntity(r ProductRequest) entities.Product {
	return entities.Product{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ProductEntityToJSON(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type OrderLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type PaymentRequest struct {
	Kind    string          `json:"kind" validate:"required,oneof=cash credit_card debit_card pix bank_slip"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Details json.RawMessage `json:"details,omitempty"`
}

type PlaceOrderRequest struct {
	AccountID int64               `json:"account_id,omitempty"`
	Customer  *NewCustomerRequest `json:"customer,omitempty"`
	OrderDate string              `json:"order_date" validate:"required,datetime=2006-01-02"`
	Lines     []OrderLineRequest  `json:"lines" validate:"required,min=1,dive"`
	Payments  []PaymentRequest    `json:"payments" validate:"required,min=1,dive"`
	Notes     string              `json:"notes,omitempty"`
}

func PlaceOrderJSONToInput(r PlaceOrderRequest) (service.PlaceOrderInput, error) {
	orderDate, err := time.Parse(dateLayout, r.OrderDate)
	if err != nil {
		return service.PlaceOrderInput{}, fmt.Errorf("%w: invalid order date", entities.ErrInvalidOrder)
	}

	in := service.PlaceOrderInput{
		AccountID: r.AccountID,
		OrderDate: orderDate,
		Notes:     r.Notes,
	}

	if r.Customer != nil {
		nc, err := NewCustomerJSONToEntity(*r.Customer)
		if err != nil {
			return service.PlaceOrderInput{}, err
		}
		in.NewCustomer = &nc
	}

	in.Lines = make([]service.LineRequest, 0, len(r.Lines))
	for _, l := range r.Lines {
		in.Lines = append(in.Lines, service.LineRequest{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}

	in.Payments = make([]service.PaymentRequest, 0, len(r.Payments))
	for _, p := range r.Payments {
		in.Payments = append(in.Payments, service.PaymentRequest{
			Kind:    entities.PaymentKind(p.Kind),
			Amount:  p.Amount,
			Details: string(p.Details),
		})
	}
	return in, nil
}

type PlaceOrderResponse struct {
	OrderID      int64  `json:"order_id"`
	TrackingCode string `json:"tracking_code"`
}

type OrderLineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PaymentResponse struct {
	ID      int64           `json:"id"`
	Kind    string          `json:"kind"`
	Amount  decimal.Decimal `json:"amount"`
	Details json.RawMessage `json:"details,omitempty"`
}

type OrderResponse struct {
	ID           int64               `json:"id"`
	AccountID    int64               `json:"account_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	OrderDate    string              `json:"order_date"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	Lines        []OrderLineResponse `json:"lines,omitempty"`
	Payments     []PaymentResponse   `json:"payments,omitempty"`
	Shipment     *ShipmentResponse   `json:"shipment,omitempty"`
}

func OrderEntityToJSON(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:           o.ID,
		AccountID:    o.AccountID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate.Format(dateLayout),
		Total:        o.Total,
		Status:       string(o.Status),
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
	}

	for _, l := range o.Lines {
		res.Lines = append(res.Lines, OrderLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	for _, p := range o.Payments {
		res.Payments = append(res.Payments, PaymentResponse{
			ID:      p.ID,
			Kind:    string(p.Kind),
			Amount:  p.Amount,
			Details: json.RawMessage(p.Details),
		})
	}
	if o.Shipment != nil {
		shipment := ShipmentEntityToJSON(*o.Shipment)
		res.Shipment = &shipment
	}
	return res
}

type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing shipped in_transit delivered"`
}

type ShipmentResponse struct {
	ID                int64      `json:"id"`
	OrderID           int64      `json:"order_id"`
	CustomerName      string     `json:"customer_name,omitempty"`
	TrackingCode      string     `json:"tracking_code"`
	Address           string     `json:"address"`
	Status            string     `json:"status"`
	EstimatedDelivery string     `json:"estimated_delivery"`
	ShippedAt         *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ShipmentEntityToJSON(s entities.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                s.ID,
		OrderID:           s.OrderID,
		CustomerName:      s.CustomerName,
		TrackingCode:      s.TrackingCode,
		Address:           s.Address,
		Status:            string(s.Status),
		EstimatedDelivery: s.EstimatedDelivery.Format(dateLayout),
		ShippedAt:         s.ShippedAt,
		DeliveredAt:       s.DeliveredAt,
		ConfirmedAt:       s.ConfirmedAt,
		CreatedAt:         s.CreatedAt,
	}
}

type DashboardResponse struct {
	TotalCustomers  int            `json:"total_customers"`
	TotalProducts   int            `json:"total_products"`
	TotalOrders     int            `json:"total_orders"`
	OpenShipments   int            `json:"open_shipments"`
	CustomersByKind map[string]int `json:"customers_by_kind"`
	OrdersByStatus  map[string]int `json:"orders_by_status"`
}

func DashboardEntityToJSON(s entities.DashboardStats) DashboardResponse {
	res := DashboardResponse{
		TotalCustomers:  s.TotalCustomers,
		TotalProducts:   s.TotalProducts,
		TotalOrders:     s.TotalOrders,
		OpenShipments:   s.OpenShipments,
		CustomersByKind: make(map[string]int, len(s.CustomersByKind)),
		OrdersByStatus:  make(map[string]int, len(s.OrdersByStatus)),
	}
	for kind, total := range s.CustomersByKind {
		res.CustomersByKind[string(kind)] = total
	}
	for status, total := range s.OrdersByStatus {
		res.OrdersByStatus[string(status)] = total
	}
	return res
}
