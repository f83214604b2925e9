package account_test

import (
	"testing"

	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := account.NewActor(id, "Sam", account.RoleWaiter)

		require.NoError(t, err)
		assert.Equal(t, id, actor.ID())
		assert.Equal(t, "Sam", actor.Name())
		assert.Equal(t, account.RoleWaiter, actor.Role())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), "", account.RoleCustomer)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), "Sam", account.RoleUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_IsStaff(t *testing.T) {
	t.Run("should report staff roles", func(t *testing.T) {
		for _, role := range []account.Role{account.RoleWaiter, account.RoleChef, account.RoleAdmin} {
			actor, err := account.NewActor(kernel.NewUUID(), "Sam", role)

			require.NoError(t, err)
			assert.True(t, actor.IsStaff(), "role %s should be staff", role)
		}
	})

	t.Run("should report customer as non-staff", func(t *testing.T) {
		actor, err := account.NewActor(kernel.NewUUID(), "Sam", account.RoleCustomer)

		require.NoError(t, err)
		assert.False(t, actor.IsStaff())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should resolve role names case insensitively", func(t *testing.T) {
		role, err := account.RoleFromString("waiter")

		require.NoError(t, err)
		assert.Equal(t, account.RoleWaiter, role)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := account.RoleFromString("Bouncer")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not resolve the Unknown name", func(t *testing.T) {
		_, err := account.RoleFromString("Unknown")

		require.Error(t, err)
	})
}
