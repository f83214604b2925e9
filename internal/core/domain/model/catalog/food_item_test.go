package catalog_test

import (
	"testing"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFoodItem(t *testing.T) {
	t.Run("should create food item", func(t *testing.T) {
		id := kernel.NewUUID()
		price, err := kernel.NewMoneyFromCents(1599)
		require.NoError(t, err)

		item, err := catalog.NewFoodItem(id, "Margherita Pizza", price)

		require.NoError(t, err)
		assert.Equal(t, id, item.ID())
		assert.Equal(t, "Margherita Pizza", item.Name())
		assert.Equal(t, int64(1599), item.Price().Cents())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := catalog.NewFoodItem(kernel.NewUUID(), "", kernel.Money{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty ID", func(t *testing.T) {
		_, err := catalog.NewFoodItem(kernel.UUID{}, "Margherita Pizza", kernel.Money{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
