package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters and mix upper, lower, digit and special characters")
)

const (
	MinEmailLen    = 8
	MaxEmailLen    = 120
	MinPasswordLen = 8
	MaxPasswordLen = 60
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinEmailLen || len(s) > MaxEmailLen || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

// NewPassword accepts only passwords from the set [A-Za-z0-9@$!%*?&] that use
// every class at least once.
func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLen || len(s) > MaxPasswordLen {
		return Password{}, ErrPasswordTooWeak
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r) && r < unicode.MaxASCII:
			lower = true
		case unicode.IsUpper(r) && r < unicode.MaxASCII:
			upper = true
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return Password{}, ErrPasswordTooWeak
		}
	}
	if !lower || !upper || !digit || !special {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
