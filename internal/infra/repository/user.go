package repository

import (
	"context"
	"log/slog"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, name, surname, email, avatar_url, age, country, password_hash, token_version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateUserSQL = `
UPDATE users SET name = $2, surname = $3, avatar_url = $4, password_hash = $5
WHERE id = $1`

	bumpUserTokenVersionSQL = `
UPDATE users SET token_version = token_version + 1 WHERE id = $1 RETURNING token_version`
)

type UserRepository struct {
	logger *slog.Logger
}

func NewUserRepository(logger *slog.Logger) *UserRepository {
	return &UserRepository{logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	if _, err := tx.Exec(ctx, insertUserSQL,
		u.ID(),
		u.Name(),
		u.Surname(),
		u.Email().Value(),
		pgconv.StringPtrToPgtype(u.AvatarURL()),
		u.Age(),
		u.Country(),
		u.PasswordHash(),
		u.TokenVersion(),
		pgconv.TimeToPgtype(u.CreatedAt()),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, updateUserSQL,
		u.ID(), u.Name(), u.Surname(), pgconv.StringPtrToPgtype(u.AvatarURL()), u.PasswordHash(),
	)
	if err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) BumpTokenVersion(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	var version int64
	if err := tx.QueryRow(ctx, bumpUserTokenVersionSQL, id).Scan(&version); err != nil {
		return 0, infra.ClassifyRepoErr(r.logger, "failed to bump user token version", err)
	}
	return version, nil
}
