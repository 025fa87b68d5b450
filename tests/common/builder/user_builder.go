//go:build unit || e2e

package builder

import (
	"time"

	"promocode-service/internal/domain/user"
	reqdto "promocode-service/internal/handler/dto/request"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Surname      string
	Email        string
	Password     string
	PasswordHash string
	AvatarURL    *string
	Age          int
	Country      string
	TokenVersion int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Ivan",
		Surname:      "Petrov",
		Email:        "test@example.com",
		Password:     "SuperStrong1!",
		PasswordHash: "hashed_password",
		Age:          23,
		Country:      "ru",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(user.NewUserParams{
		Name:         u.Name,
		Surname:      u.Surname,
		Email:        email,
		AvatarURL:    u.AvatarURL,
		Age:          u.Age,
		Country:      u.Country,
		PasswordHash: u.PasswordHash,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

// BuildStored returns the user as a repository would load it.
func (u *UserBuilder) BuildStored() *user.User {
	return user.ReconstructUser(user.ReconstructParams{
		ID:           uuid.New(),
		Name:         u.Name,
		Surname:      u.Surname,
		Email:        u.Email,
		AvatarURL:    u.AvatarURL,
		Age:          u.Age,
		Country:      u.Country,
		PasswordHash: u.PasswordHash,
		TokenVersion: u.TokenVersion,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func (u *UserBuilder) BuildDTO() reqdto.SignUpUserRequest {
	age := u.Age
	return reqdto.SignUpUserRequest{
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Password:  u.Password,
		AvatarURL: u.AvatarURL,
		Other: reqdto.UserOtherRequest{
			Age:     &age,
			Country: u.Country,
		},
	}
}

func (u *UserBuilder) BuildProfileView() *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:        uuid.New(),
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Age:       u.Age,
		Country:   u.Country,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name, surname string) *UserBuilder {
	u.Name = name
	u.Surname = surname
	return u
}

func (u *UserBuilder) WithAge(age int) *UserBuilder {
	u.Age = age
	return u
}

func (u *UserBuilder) WithCountry(country string) *UserBuilder {
	u.Country = country
	return u
}

func (u *UserBuilder) WithAvatarURL(url string) *UserBuilder {
	u.AvatarURL = &url
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
