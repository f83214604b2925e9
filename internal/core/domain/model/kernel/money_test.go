package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		testCases := []struct {
			cents    int64
			expected string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{99, "0.99"},
			{100, "1.00"},
			{1599, "15.99"},
			{3198, "31.98"},
			{1000000, "10000.00"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoneyFromCents(tc.cents)

			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
			assert.Equal(t, tc.expected, m.String())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("zero value is valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(1599)
		b, _ := kernel.NewMoneyFromCents(250)

		sum := a.Add(b)

		assert.Equal(t, int64(1849), sum.Cents())
		// operands are untouched
		assert.Equal(t, int64(1599), a.Cents())
		assert.Equal(t, int64(250), b.Cents())
	})

	t.Run("MultiplyBy scales by a quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromCents(1599)

		line := price.MultiplyBy(2)

		assert.Equal(t, int64(3198), line.Cents())
		assert.Equal(t, "31.98", line.String())
	})

	t.Run("MultiplyBy one is identity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromCents(725)

		assert.True(t, price.IsEqual(price.MultiplyBy(1)))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoneyFromCents(100)
	b, _ := kernel.NewMoneyFromCents(100)
	c, _ := kernel.NewMoneyFromCents(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
