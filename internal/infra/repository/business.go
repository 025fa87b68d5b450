package repository

import (
	"context"
	"log/slog"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertBusinessSQL = `
INSERT INTO businesses (id, name, email, password_hash, token_version, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	bumpBusinessTokenVersionSQL = `
UPDATE businesses SET token_version = token_version + 1 WHERE id = $1 RETURNING token_version`
)

type BusinessRepository struct {
	logger *slog.Logger
}

func NewBusinessRepository(logger *slog.Logger) *BusinessRepository {
	return &BusinessRepository{logger: logger}
}

func (r *BusinessRepository) Create(ctx context.Context, tx db.DBTX, b *business.Business) error {
	if _, err := tx.Exec(ctx, insertBusinessSQL,
		b.ID(), b.Name(), b.Email().Value(), b.PasswordHash(), b.TokenVersion(), pgconv.TimeToPgtype(b.CreatedAt()),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create business", err)
	}
	return nil
}

func (r *BusinessRepository) BumpTokenVersion(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	var version int64
	if err := tx.QueryRow(ctx, bumpBusinessTokenVersionSQL, id).Scan(&version); err != nil {
		return 0, infra.ClassifyRepoErr(r.logger, "failed to bump business token version", err)
	}
	return version, nil
}
