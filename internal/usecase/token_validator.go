package usecase

import (
	"context"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/pkg/jwt"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenValidation = errs.New("token validation failed")
	// ErrTokenRevoked is returned for a token issued before the latest sign-in.
	ErrTokenRevoked = errs.New("token revoked")
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	uow        shared.UnitOfWork
}

func NewTokenValidator(jwtService *jwt.Service, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		uow:        uow,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	current, err := t.uow.CommandReads().TokenVersion(ctx, role, claims.SubjectID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, "", ErrTokenRevoked
		}
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}
	if current != claims.TokenVersion {
		return uuid.Nil, "", ErrTokenRevoked
	}

	return claims.SubjectID, role, nil
}
