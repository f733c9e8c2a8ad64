package response

import (
	"time"

	"spa-promotions/internal/usecase/shared"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(rec *shared.UserRecord) UserResponse {
	return UserResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      rec.Role,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
	}
}
