package request

import (
	"spa-promotions/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}
