package order_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.Ready))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Completed))
		assert.Equal(t, 7, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Preparing,
			order.Ready,
			order.Shipped,
			order.Delivered,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return status names", func(t *testing.T) {
		assert.Equal(t, "Placed", order.Placed.String())
		assert.Equal(t, "Shipped", order.Shipped.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should resolve every valid status name", func(t *testing.T) {
		for _, name := range []string{"Placed", "Preparing", "Ready", "Shipped", "Delivered", "Completed", "Cancelled"} {
			status, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should match case insensitively", func(t *testing.T) {
		status, err := order.StatusFromString("delivered")

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		status, err := order.StatusFromString("Teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, status)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report terminal statuses", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should report non-terminal statuses", func(t *testing.T) {
		assert.False(t, order.Placed.IsTerminal())
		assert.False(t, order.Delivered.IsTerminal())
	})
}

func TestStatus_HasReached(t *testing.T) {
	t.Run("should report progress along the happy path", func(t *testing.T) {
		assert.True(t, order.Ready.HasReached(order.Ready))
		assert.True(t, order.Delivered.HasReached(order.Ready))
		assert.False(t, order.Preparing.HasReached(order.Ready))
	})

	t.Run("should report nothing reached for Cancelled", func(t *testing.T) {
		assert.False(t, order.Cancelled.HasReached(order.Placed))
	})

	t.Run("should report nothing reached for Unknown", func(t *testing.T) {
		assert.False(t, order.Unknown.HasReached(order.Placed))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow forward transition", func(t *testing.T) {
		next, err := order.Placed.TransitionTo(order.Preparing)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("should allow skipping intermediate statuses", func(t *testing.T) {
		next, err := order.Placed.TransitionTo(order.Delivered)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should allow backward transition", func(t *testing.T) {
		next, err := order.Ready.TransitionTo(order.Preparing)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Placed.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject transition out of terminal status", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Placed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject same-status transition for every reachable status", func(t *testing.T) {
		statuses := []order.Status{
			order.Placed,
			order.Preparing,
			order.Ready,
			order.Shipped,
			order.Delivered,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range statuses {
			t.Run(fmt.Sprintf("should report %s already in state", status.String()), func(t *testing.T) {
				_, err := status.TransitionTo(status)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrAlreadyInState)
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Preparing, order.Ready, order.Shipped, order.Delivered} {
			next, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should reject cancelling a completed order", func(t *testing.T) {
		_, err := order.Completed.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report already cancelled order as already in state", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyInState)
	})
}
