package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := NewTrackingCode()
		assert.Regexp(t, `^BR[0-9A-Z]{11}$`, code)

		if _, ok := seen[code]; ok {
			t.Fatalf("duplicate tracking code generated: %s", code)
		}
		seen[code] = struct{}{}
	}
}

func TestShipmentStatus_CanAdvanceTo(t *testing.T) {
	nonTerminal := []ShipmentStatus{
		ShipmentStatusPreparing,
		ShipmentStatusShipped,
		ShipmentStatusInTransit,
		ShipmentStatusDelivered,
	}

	for _, from := range nonTerminal {
		for _, to := range nonTerminal {
			assert.True(t, from.CanAdvanceTo(to), "%s -> %s", from, to)
		}
	}

	for _, from := range nonTerminal {
		assert.False(t, from.CanAdvanceTo(ShipmentStatusConfirmed), "%s -> confirmed", from)
	}

	for _, to := range nonTerminal {
		assert.False(t, ShipmentStatusConfirmed.CanAdvanceTo(to), "confirmed -> %s", to)
	}

	assert.False(t, ShipmentStatusPreparing.CanAdvanceTo("teleported"))
}
