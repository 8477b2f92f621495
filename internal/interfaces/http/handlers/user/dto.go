package user

import (
	"mantis/internal/application/user/usecases"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	FullName string `json:"full_name,omitempty" binding:"omitempty,max=200"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=admin supervisor engineer technician viewer"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
