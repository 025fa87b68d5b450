package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"promocode-service/internal/domain/auth"
	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/pkg/password"
	"promocode-service/internal/usecase/shared"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(subjectID uuid.UUID, role user.Role, tokenVersion int64) (string, error)
	TokenDuration() time.Duration
}

type AuthResult struct {
	SubjectID uuid.UUID
	Token     string
	ExpiresIn time.Duration
}

type SignUpUserRequest struct {
	Name      string
	Surname   string
	Email     string
	Password  string
	AvatarURL *string
	Age       int
	Country   string
}

type SignUpBusinessRequest struct {
	Name     string
	Email    string
	Password string
}

type AuthCommands interface {
	SignUpUser(ctx context.Context, req SignUpUserRequest) (*AuthResult, error)
	SignInUser(ctx context.Context, email, password string) (*AuthResult, error)
	SignUpBusiness(ctx context.Context, req SignUpBusinessRequest) (*AuthResult, error)
	SignInBusiness(ctx context.Context, email, password string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) SignUpUser(ctx context.Context, req SignUpUserRequest) (*AuthResult, error) {
	email, hash, err := a.prepareCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(user.NewUserParams{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        email,
		AvatarURL:    req.AvatarURL,
		Age:          req.Age,
		Country:      req.Country,
		PasswordHash: hash,
		CreatedAt:    a.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return a.issue(u.ID(), user.RoleUser, u.TokenVersion())
}

func (a *authCommandsImpl) SignInUser(ctx context.Context, email, pass string) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	var version int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, berr := tx.Users().BumpTokenVersion(ctx, tx.DB(), u.ID())
		version = v
		return berr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	return a.issue(u.ID(), user.RoleUser, version)
}

func (a *authCommandsImpl) SignUpBusiness(ctx context.Context, req SignUpBusinessRequest) (*AuthResult, error) {
	email, hash, err := a.prepareCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	b, err := business.NewBusiness(req.Name, email, hash, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Businesses().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return a.issue(b.ID(), user.RoleBusiness, b.TokenVersion())
}

func (a *authCommandsImpl) SignInBusiness(ctx context.Context, email, pass string) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	b, err := a.uow.CommandReads().BusinessByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if err := password.ComparePassword(b.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	var version int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, berr := tx.Businesses().BumpTokenVersion(ctx, tx.DB(), b.ID())
		version = v
		return berr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	return a.issue(b.ID(), user.RoleBusiness, version)
}

func (a *authCommandsImpl) prepareCredentials(rawEmail, rawPassword string) (user.Email, string, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Email{}, "", err
	}
	pass, err := user.NewPassword(rawPassword)
	if err != nil {
		return user.Email{}, "", err
	}
	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return user.Email{}, "", errs.Wrap(err, "hash password")
	}
	return email, hash, nil
}

func (a *authCommandsImpl) issue(subjectID uuid.UUID, role user.Role, version int64) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(subjectID, role, version)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		SubjectID: subjectID,
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}
