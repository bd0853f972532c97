package guard_test

import (
	"errors"
	"testing"

	"deliverytracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("delivery not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("delivery not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		guardCopy := g

		// Then
		require.NoError(t, guardCopy.Validate(nil))
	})
}

// TestConstructorGuardEmbedded shows the guard inside a domain value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errParcelNotConstructed := errors.New("Parcel must be created via newParcel")

	type parcel struct {
		label string
		guard guard.ConstructorGuard
	}

	newParcel := func(label string) parcel {
		return parcel{label: label, guard: guard.NewConstructorGuard()}
	}

	validate := func(p parcel) error {
		return p.guard.Validate(errParcelNotConstructed)
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		p := newParcel("Book")

		require.NoError(t, validate(p))
		assert.Equal(t, "Book", p.label)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var p parcel

		assert.Equal(t, errParcelNotConstructed, validate(p))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	err := errors.New("not constructed")

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
