package guard_test

import (
	"errors"
	"testing"

	"clinicmeals/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ward must be created via NewWard")

		// When
		err := g.Validate(expectedError)

		// Then
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsage shows the guard embedded in a small value object.
func TestConstructorGuardUsage(t *testing.T) {
	type ward struct {
		name  string
		beds  int
		guard guard.ConstructorGuard
	}

	errWardNotConstructed := errors.New("ward must be created via newWard")

	newWard := func(name string, beds int) (ward, error) {
		if name == "" {
			return ward{}, errors.New("ward name is required")
		}
		if beds <= 0 {
			return ward{}, errors.New("ward needs at least one bed")
		}
		return ward{name: name, beds: beds, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		w, err := newWard("Cardiologie", 12)

		require.NoError(t, err)
		require.NoError(t, w.guard.Validate(errWardNotConstructed))
		assert.Equal(t, "Cardiologie", w.name)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var w ward

		assert.Equal(t, errWardNotConstructed, w.guard.Validate(errWardNotConstructed))
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		w, err := newWard("Pédiatrie", 8)
		require.NoError(t, err)

		cp := w

		require.NoError(t, cp.guard.Validate(errWardNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
