//go:build unit

package property_test

import (
	"strings"
	"testing"

	"booking-engine/internal/domain/property"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	id := uuid.New()

	t.Run("valid property", func(t *testing.T) {
		p, err := property.NewProperty(id, "Seaside Cottage", 10000)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Seaside Cottage", p.Name())
		assert.Equal(t, int64(10000), p.NightlyRateCents())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		p, err := property.NewProperty(id, "  Seaside Cottage  ", 10000)
		require.NoError(t, err)
		assert.Equal(t, "Seaside Cottage", p.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := property.NewProperty(id, "   ", 10000)
		assert.ErrorIs(t, err, property.ErrEmptyPropertyName)
	})

	t.Run("name length boundary", func(t *testing.T) {
		_, err := property.NewProperty(id, strings.Repeat("a", property.MaxPropertyNameLength), 10000)
		assert.NoError(t, err)

		_, err = property.NewProperty(id, strings.Repeat("a", property.MaxPropertyNameLength+1), 10000)
		assert.ErrorIs(t, err, property.ErrPropertyNameTooLong)
	})

	t.Run("zero rate allowed, negative rejected", func(t *testing.T) {
		_, err := property.NewProperty(id, "Free Stay", 0)
		assert.NoError(t, err)

		_, err = property.NewProperty(id, "Broken Rate", -1)
		assert.ErrorIs(t, err, property.ErrNegativeNightlyRate)
	})
}
