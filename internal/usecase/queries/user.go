package queries

import (
	"context"
	"sort"
	"time"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserQueries interface {
	List(ctx context.Context, actor policy.Actor) ([]UserView, error)
	ByID(ctx context.Context, id string, actor policy.Actor) (*UserView, error)
}

type userQueriesImpl struct {
	users shared.UserStore
}

func NewUserQueries(users shared.UserStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) List(ctx context.Context, actor policy.Actor) ([]UserView, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errs.Mark(errs.New("role may not list users"), errs.ErrForbidden)
	}
	recs, err := q.users.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	out := make([]UserView, len(recs))
	for i, rec := range recs {
		out[i] = userView(rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (q *userQueriesImpl) ByID(ctx context.Context, id string, actor policy.Actor) (*UserView, error) {
	// Users may always read their own profile.
	if actor.ID != id && !policy.CanManageUsers(actor) {
		return nil, errs.Mark(errs.New("role may not read other users"), errs.ErrForbidden)
	}
	rec, err := q.users.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	view := userView(rec)
	return &view, nil
}

func userView(rec shared.UserRecord) UserView {
	return UserView{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      rec.Role,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
	}
}
