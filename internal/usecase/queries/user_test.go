//go:build unit

package queries_test

import (
	"context"
	"testing"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/user"
	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/queries"
	"spa-promotions/internal/usecase/shared"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserList(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewCollection[shared.UserRecord]()
	q := queries.NewUserQueries(users)

	for _, name := range []string{"Chi Nguyen", "An Le", "Binh Vo"} {
		rec := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Name = name
			b.Email = name + "@example.com"
		}).BuildRecord()
		require.NoError(t, users.Create(ctx, rec))
	}

	t.Run("management sees everyone sorted by name", func(t *testing.T) {
		manager := policy.Actor{ID: "m1", Role: user.RoleManagement}

		views, err := q.List(ctx, manager)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "An Le", views[0].Name)
		assert.Equal(t, "Binh Vo", views[1].Name)
		assert.Equal(t, "Chi Nguyen", views[2].Name)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		_, err := q.List(ctx, viewer)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestUserByID(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewCollection[shared.UserRecord]()
	q := queries.NewUserQueries(users)

	rec := builder.NewUserBuilder().BuildRecord()
	require.NoError(t, users.Create(ctx, rec))

	t.Run("self read is always allowed", func(t *testing.T) {
		self := policy.Actor{ID: rec.ID, Role: user.RoleSales}

		view, err := q.ByID(ctx, rec.ID, self)
		require.NoError(t, err)
		assert.Equal(t, rec.Email, view.Email)
	})

	t.Run("reading someone else needs user management", func(t *testing.T) {
		stranger := policy.Actor{ID: "someone-else", Role: user.RoleSales}

		_, err := q.ByID(ctx, rec.ID, stranger)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		manager := policy.Actor{ID: "m1", Role: user.RoleManagement}
		view, err := q.ByID(ctx, rec.ID, manager)
		require.NoError(t, err)
		assert.Equal(t, rec.Name, view.Name)
	})
}
