package kernel_test

import (
	"testing"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("valid_value_creates_id", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Value())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_value_is_rejected", func(t *testing.T) {
		_, err := kernel.NewID(-7)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMustNewID(t *testing.T) {
	t.Run("valid_value_does_not_panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			kernel.MustNewID(1)
		})
	})

	t.Run("invalid_value_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			kernel.MustNewID(0)
		})
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero_value_id_is_invalid", func(t *testing.T) {
		var id kernel.ID

		require.Error(t, id.Validate())
		assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
		assert.True(t, id.IsZero())
	})
}

func TestID_IsEqual(t *testing.T) {
	a := kernel.MustNewID(5)
	b := kernel.MustNewID(5)
	c := kernel.MustNewID(6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestParseID(t *testing.T) {
	t.Run("parses_decimal_string", func(t *testing.T) {
		id, err := kernel.ParseID("123")

		require.NoError(t, err)
		assert.Equal(t, int64(123), id.Value())
	})

	t.Run("rejects_non_numeric_string", func(t *testing.T) {
		_, err := kernel.ParseID("abc")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_string", func(t *testing.T) {
		_, err := kernel.ParseID("0")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
