package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		someErr := errors.New("persistent")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return someErr
		})
		assert.ErrorIs(t, err, someErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("excluded errors return immediately", func(t *testing.T) {
		notFound := errors.New("not found")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return notFound
		}, notFound)
		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("wrapped excluded errors return immediately", func(t *testing.T) {
		notFound := errors.New("not found")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return errors.Join(errors.New("pricing failed"), notFound)
		}, notFound)
		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, 1, calls)
	})
}
