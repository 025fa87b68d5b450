package user

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("name must be 1..100 characters")
	ErrInvalidSurname   = errors.New("surname must be 1..120 characters")
	ErrInvalidAge       = errors.New("age must be between 0 and 100")
	ErrInvalidAvatarURL = errors.New("avatar_url must be a non-blank url up to 350 characters")
)

type User struct {
	id           uuid.UUID
	name         string
	surname      string
	email        Email
	avatarURL    *string
	age          int
	country      string
	passwordHash string
	tokenVersion int64
	createdAt    time.Time
}

type NewUserParams struct {
	Name         string
	Surname      string
	Email        Email
	AvatarURL    *string
	Age          int
	Country      string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUser(p NewUserParams) (*User, error) {
	country, err := promocode.NormalizeCountry(p.Country)
	if err != nil {
		return nil, err
	}
	u := &User{
		id:           uuid.New(),
		name:         strings.TrimSpace(p.Name),
		surname:      strings.TrimSpace(p.Surname),
		email:        p.Email,
		avatarURL:    p.AvatarURL,
		age:          p.Age,
		country:      country,
		passwordHash: p.PasswordHash,
		createdAt:    p.CreatedAt,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

type ReconstructParams struct {
	ID           uuid.UUID
	Name         string
	Surname      string
	Email        string
	AvatarURL    *string
	Age          int
	Country      string
	PasswordHash string
	TokenVersion int64
	CreatedAt    time.Time
}

func ReconstructUser(p ReconstructParams) *User {
	return &User{
		id:           p.ID,
		name:         p.Name,
		surname:      p.Surname,
		email:        Email{value: p.Email},
		avatarURL:    p.AvatarURL,
		age:          p.Age,
		country:      p.Country,
		passwordHash: p.PasswordHash,
		tokenVersion: p.TokenVersion,
		createdAt:    p.CreatedAt,
	}
}

// ProfilePatch holds the profile fields a user may change. Nil means unchanged.
type ProfilePatch struct {
	Name         *string
	Surname      *string
	AvatarURL    *string
	PasswordHash *string
}

func (u *User) ApplyPatch(pt ProfilePatch) error {
	candidate := *u
	candidate.name = strings.TrimSpace(patch.Coalesce(pt.Name, u.name))
	candidate.surname = strings.TrimSpace(patch.Coalesce(pt.Surname, u.surname))
	candidate.passwordHash = patch.Coalesce(pt.PasswordHash, u.passwordHash)
	if pt.AvatarURL != nil {
		candidate.avatarURL = pt.AvatarURL
	}
	if err := candidate.validate(); err != nil {
		return err
	}
	*u = candidate
	return nil
}

func (u *User) validate() error {
	if n := utf8.RuneCountInString(u.name); n < 1 || n > 100 {
		return ErrInvalidName
	}
	if n := utf8.RuneCountInString(u.surname); n < 1 || n > 120 {
		return ErrInvalidSurname
	}
	if u.age < 0 || u.age > 100 {
		return ErrInvalidAge
	}
	if u.avatarURL != nil {
		a := strings.TrimSpace(*u.avatarURL)
		if a == "" || len(a) > 350 {
			return ErrInvalidAvatarURL
		}
	}
	return nil
}

// Profile is what promocode targeting evaluates.
func (u *User) Profile() promocode.Profile {
	return promocode.Profile{Age: u.age, Country: u.country}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Surname() string      { return u.surname }
func (u *User) Email() Email         { return u.email }
func (u *User) AvatarURL() *string   { return u.avatarURL }
func (u *User) Age() int             { return u.age }
func (u *User) Country() string      { return u.country }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) TokenVersion() int64  { return u.tokenVersion }
func (u *User) CreatedAt() time.Time { return u.createdAt }
