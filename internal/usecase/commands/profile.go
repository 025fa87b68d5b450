package commands

import (
	"context"

	"github.com/google/uuid"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/pkg/password"
	"promocode-service/internal/usecase/shared"
)

var ErrUserNotFound = errs.New("user not found")

type UpdateProfileRequest struct {
	Name      *string
	Surname   *string
	AvatarURL *string
	Password  *string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (uc *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error {
	pt := user.ProfilePatch{
		Name:      req.Name,
		Surname:   req.Surname,
		AvatarURL: req.AvatarURL,
	}
	if req.Password != nil {
		pass, err := user.NewPassword(*req.Password)
		if err != nil {
			return err
		}
		hash, err := password.HashPassword(pass.Value())
		if err != nil {
			return errs.Wrap(err, "hash password")
		}
		pt.PasswordHash = &hash
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := u.ApplyPatch(pt); err != nil {
			return err
		}
		return tx.Users().Update(ctx, tx.DB(), u)
	})
}
