package request

import (
	"promocode-service/internal/usecase/commands"
)

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserOtherRequest struct {
	Age     *int   `json:"age" binding:"required,min=0,max=100"`
	Country string `json:"country" binding:"required,len=2"`
}

type SignUpUserRequest struct {
	Name      string           `json:"name" binding:"required,min=1,max=100"`
	Surname   string           `json:"surname" binding:"required,min=1,max=120"`
	Email     string           `json:"email" binding:"required,email,min=8,max=120"`
	Password  string           `json:"password" binding:"required,min=8,max=60"`
	AvatarURL *string          `json:"avatar_url" binding:"omitempty,url,max=350"`
	Other     UserOtherRequest `json:"other" binding:"required"`
}

func (r *SignUpUserRequest) ToCommand() commands.SignUpUserRequest {
	return commands.SignUpUserRequest{
		Name:      r.Name,
		Surname:   r.Surname,
		Email:     r.Email,
		Password:  r.Password,
		AvatarURL: r.AvatarURL,
		Age:       *r.Other.Age,
		Country:   r.Other.Country,
	}
}

type SignUpBusinessRequest struct {
	Name     string `json:"name" binding:"required,min=5,max=50"`
	Email    string `json:"email" binding:"required,email,min=8,max=120"`
	Password string `json:"password" binding:"required,min=8,max=60"`
}

func (r *SignUpBusinessRequest) ToCommand() commands.SignUpBusinessRequest {
	return commands.SignUpBusinessRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
