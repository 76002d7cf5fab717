package entities

import (
	"crypto/rand"
	"errors"
	"time"
)

type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "preparing"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusConfirmed ShipmentStatus = "confirmed"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPreparing, ShipmentStatusShipped, ShipmentStatusInTransit,
		ShipmentStatusDelivered, ShipmentStatusConfirmed:
		return true
	}
	return false
}

// CanAdvanceTo reports whether a shipment currently in s may be moved to
// target via a status update. Jumps between the four non-terminal statuses are
// allowed in any order; CONFIRMED is only reachable through receipt
// confirmation and is never left.
func (s ShipmentStatus) CanAdvanceTo(target ShipmentStatus) bool {
	if !target.Valid() || target == ShipmentStatusConfirmed {
		return false
	}
	return s != ShipmentStatusConfirmed
}

// DeliveryEstimateDays is the fixed offset added to the order date to compute
// the estimated delivery date.
const DeliveryEstimateDays = 7

type Shipment struct {
	ID      int64
	OrderID int64
	// TrackingCode is the opaque customer-facing identifier, unique per shipment.
	TrackingCode string
	// Address is a point-in-time copy of the account address at order time.
	Address           string
	Status            ShipmentStatus
	EstimatedDelivery time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
	ConfirmedAt       *time.Time
	CreatedAt         time.Time

	// CustomerName is filled on admin listings, joined from the profile.
	CustomerName string
}

var (
	ErrShipmentNotFound         = errors.New("shipment not found")
	ErrShipmentNotDelivered     = errors.New("shipment is not delivered yet")
	ErrShipmentAlreadyConfirmed = errors.New("shipment is already confirmed")
	ErrInvalidShipmentStatus    = errors.New("invalid shipment status")
)

const (
	trackingCodePrefix   = "BR"
	trackingCodeLength   = 11
	trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewTrackingCode generates a carrier-style code: the BR marker followed by
// 11 random base-36 characters. Uniqueness is probabilistic; the storage layer
// keeps a unique index as the backstop.
func NewTrackingCode() string {
	buf := make([]byte, trackingCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic("tracking code entropy unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}
	return trackingCodePrefix + string(buf)
}
