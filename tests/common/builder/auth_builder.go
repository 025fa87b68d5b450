//go:build unit || e2e

package builder

import (
	reqdto "promocode-service/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Acme Corporation",
		Email:    "test@example.com",
		Password: "SuperStrong1!",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.SignInRequest {
	return reqdto.SignInRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildBusinessDTO() reqdto.SignUpBusinessRequest {
	return reqdto.SignUpBusinessRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
}
