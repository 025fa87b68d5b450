package business

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"promocode-service/internal/domain/user"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("business name must be 5..50 characters")

// Business owns promocodes. It shares the email and password rules of users.
type Business struct {
	id           uuid.UUID
	name         string
	email        user.Email
	passwordHash string
	tokenVersion int64
	createdAt    time.Time
}

func NewBusiness(name string, email user.Email, passwordHash string, createdAt time.Time) (*Business, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 5 || n > 50 {
		return nil, ErrInvalidName
	}
	return &Business{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func ReconstructBusiness(id uuid.UUID, name, email, passwordHash string, tokenVersion int64, createdAt time.Time) *Business {
	e, _ := user.NewEmail(email)
	return &Business{
		id:           id,
		name:         name,
		email:        e,
		passwordHash: passwordHash,
		tokenVersion: tokenVersion,
		createdAt:    createdAt,
	}
}

func (b *Business) ID() uuid.UUID        { return b.id }
func (b *Business) Name() string         { return b.name }
func (b *Business) Email() user.Email    { return b.email }
func (b *Business) PasswordHash() string { return b.passwordHash }
func (b *Business) TokenVersion() int64  { return b.tokenVersion }
func (b *Business) CreatedAt() time.Time { return b.createdAt }
