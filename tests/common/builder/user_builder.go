//go:build unit || e2e

package builder

import (
	"time"

	"spa-promotions/internal/domain/user"
	"spa-promotions/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Linh Tran",
		Email:        "linh@example.com",
		PasswordHash: "hashed_password",
		Role:         "sales",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(name, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildRecord() shared.UserRecord {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	return shared.UserRecord{
		ID:           uuid.NewString(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
