//go:build unit || e2e

package builder

import (
	"room-reservation/internal/domain/user"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/usecase/commands"
)

// AuthBuilder describes a login attempt. The default is an employee account
// with the password the test fixtures hash.
type AuthBuilder struct {
	Email    string
	Password string
	Role     user.Role
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "alice@example.com",
		Password: "password123",
		Role:     user.RoleSalarie,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    a.Email,
		Password: a.Password,
	}
}
