//go:build unit

package user_test

import (
	"testing"

	"spa-promotions/internal/domain/user"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEmpty(t, actual.ID())
		assert.Equal(t, "Linh Tran", actual.Name().Value())
		assert.Equal(t, "linh@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleSales, actual.Role())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.Email = "not-an-email" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "plus addressing accepted",
				mutate: func(b *builder.UserBuilder) { b.Email = "linh+spa@example.com" },
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.Name = "" },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "sales", mutate: func(b *builder.UserBuilder) { b.Role = "sales" }},
			{name: "marketing", mutate: func(b *builder.UserBuilder) { b.Role = "marketing" }},
			{name: "management", mutate: func(b *builder.UserBuilder) { b.Role = "management" }},
			{name: "reception", mutate: func(b *builder.UserBuilder) { b.Role = "reception" }},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.Role = "janitor" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("minimum length enforced", func(t *testing.T) {
		_, err := user.NewPassword("short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("long enough", func(t *testing.T) {
		pw, err := user.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", pw.Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
