package commands

import (
	"context"
	"strings"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/user"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/pkg/password"
	"spa-promotions/internal/usecase/shared"
)

var ErrEmailTaken = errs.New("email already registered")

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserCommands interface {
	CreateUser(ctx context.Context, req CreateUserRequest, actor policy.Actor) (*shared.UserRecord, error)
	DeactivateUser(ctx context.Context, id string, actor policy.Actor) (*shared.UserRecord, error)
}

type userCommandsImpl struct {
	users shared.UserStore
	clock clock.Clock
}

func NewUserCommands(users shared.UserStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{users: users, clock: clk}
}

func (u *userCommandsImpl) CreateUser(ctx context.Context, req CreateUserRequest, actor policy.Actor) (*shared.UserRecord, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errs.Mark(errs.New("role may not manage users"), errs.ErrForbidden)
	}

	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}

	if taken, err := u.emailTaken(ctx, email.Value()); err != nil {
		return nil, err
	} else if taken {
		return nil, errs.Mark(ErrEmailTaken, errs.ErrInvalidOperation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	entity := user.NewUser(name, email, hash, role)
	rec := shared.UserToRecord(entity)
	now := u.clock.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := u.users.Create(ctx, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (u *userCommandsImpl) DeactivateUser(ctx context.Context, id string, actor policy.Actor) (*shared.UserRecord, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errs.Mark(errs.New("role may not manage users"), errs.ErrForbidden)
	}
	rec, err := u.users.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	rec.IsActive = false
	rec.UpdatedAt = u.clock.Now()
	if err := u.users.Update(ctx, id, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (u *userCommandsImpl) emailTaken(ctx context.Context, email string) (bool, error) {
	all, err := u.users.List(ctx)
	if err != nil {
		return false, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	for _, rec := range all {
		if strings.EqualFold(rec.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
