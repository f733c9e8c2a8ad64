//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/pkg/jwt"
	"spa-promotions/internal/pkg/password"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/shared"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPassword = "correct-horse-battery"

type authFixture struct {
	users    *memstore.Collection[shared.UserRecord]
	jwt      *jwt.Service
	commands commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users: memstore.NewCollection[shared.UserRecord](),
		jwt:   jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour),
	}
	f.commands = commands.NewAuthCommands(f.users, f.jwt)
	return f
}

func (f *authFixture) seedUser(t *testing.T, mutate func(*builder.UserBuilder)) shared.UserRecord {
	t.Helper()
	hash, err := password.HashPassword(loginPassword)
	require.NoError(t, err)

	b := builder.NewUserBuilder()
	b.PasswordHash = hash
	if mutate != nil {
		mutate(b)
	}
	rec := b.BuildRecord()
	require.NoError(t, f.users.Create(context.Background(), rec))
	return rec
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues both tokens for valid credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, nil)

		result, err := f.commands.Login(ctx, rec.Email, loginPassword)
		require.NoError(t, err)

		assert.Equal(t, rec.ID, result.UserID)
		assert.Equal(t, rec.Role, result.Role)
		require.NotNil(t, result.TokenPair)

		claims, err := f.jwt.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, nil)

		_, errWrong := f.commands.Login(ctx, rec.Email, "not-the-password")
		_, errUnknown := f.commands.Login(ctx, "nobody@example.com", loginPassword)

		assert.ErrorIs(t, errWrong, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated users may not log in", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, func(b *builder.UserBuilder) { b.IsActive = false })

		_, err := f.commands.Login(ctx, rec.Email, loginPassword)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates a valid refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, nil)

		login, err := f.commands.Login(ctx, rec.Email, loginPassword)
		require.NoError(t, err)

		pair, err := f.commands.RefreshToken(ctx, login.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("an access token is not a refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, nil)

		login, err := f.commands.Login(ctx, rec.Email, loginPassword)
		require.NoError(t, err)

		_, err = f.commands.RefreshToken(ctx, login.TokenPair.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("rotation fails once the user is deactivated", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.seedUser(t, nil)

		login, err := f.commands.Login(ctx, rec.Email, loginPassword)
		require.NoError(t, err)

		rec.IsActive = false
		require.NoError(t, f.users.Update(ctx, rec.ID, rec))

		_, err = f.commands.RefreshToken(ctx, login.TokenPair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.commands.RefreshToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}
