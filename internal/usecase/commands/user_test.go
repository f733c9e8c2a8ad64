//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/pkg/password"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/shared"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserCommands() (*memstore.Collection[shared.UserRecord], commands.UserCommands) {
	users := memstore.NewCollection[shared.UserRecord]()
	clk := clock.NewMockClock(time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC))
	return users, commands.NewUserCommands(users, clk)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	valid := commands.CreateUserRequest{
		Name:     "Mai Pham",
		Email:    "mai@example.com",
		Password: "long-enough-secret",
		Role:     "reception",
	}

	t.Run("management creates an active user with a hashed password", func(t *testing.T) {
		users, cmds := newUserCommands()

		rec, err := cmds.CreateUser(ctx, valid, managementActor)
		require.NoError(t, err)

		assert.True(t, rec.IsActive)
		assert.Equal(t, "reception", rec.Role)
		assert.NotEqual(t, valid.Password, rec.PasswordHash)
		assert.NoError(t, password.ComparePassword(rec.PasswordHash, valid.Password))

		_, err = users.Get(ctx, rec.ID)
		assert.NoError(t, err)
	})

	t.Run("only management manages users", func(t *testing.T) {
		_, cmds := newUserCommands()

		_, err := cmds.CreateUser(ctx, valid, salesActor)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("duplicate email differs only in case", func(t *testing.T) {
		users, cmds := newUserCommands()
		existing := builder.NewUserBuilder().WithEmail("Mai@Example.com").BuildRecord()
		require.NoError(t, users.Create(ctx, existing))

		_, err := cmds.CreateUser(ctx, valid, managementActor)
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("field validation", func(t *testing.T) {
		_, cmds := newUserCommands()

		cases := []struct {
			name   string
			mutate func(*commands.CreateUserRequest)
		}{
			{"empty name", func(r *commands.CreateUserRequest) { r.Name = "" }},
			{"bad email", func(r *commands.CreateUserRequest) { r.Email = "not-an-email" }},
			{"short password", func(r *commands.CreateUserRequest) { r.Password = "short" }},
			{"unknown role", func(r *commands.CreateUserRequest) { r.Role = "janitor" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := valid
				tc.mutate(&req)
				_, err := cmds.CreateUser(ctx, req, managementActor)
				assert.ErrorIs(t, err, errs.ErrInvalidOperation)
			})
		}
	})
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the active flag", func(t *testing.T) {
		users, cmds := newUserCommands()
		rec := builder.NewUserBuilder().BuildRecord()
		require.NoError(t, users.Create(ctx, rec))

		updated, err := cmds.DeactivateUser(ctx, rec.ID, managementActor)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)

		stored, err := users.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, cmds := newUserCommands()

		_, err := cmds.DeactivateUser(ctx, "ghost", managementActor)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("sales may not deactivate", func(t *testing.T) {
		users, cmds := newUserCommands()
		rec := builder.NewUserBuilder().BuildRecord()
		require.NoError(t, users.Create(ctx, rec))

		_, err := cmds.DeactivateUser(ctx, rec.ID, salesActor)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
