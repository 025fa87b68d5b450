package repository

import (
	"context"
	"log/slog"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"
)

const insertActivationSQL = `
INSERT INTO promocode_activations (id, promocode_id, user_id, code, created_at)
VALUES ($1, $2, $3, $4, $5)`

type ActivationRepository struct {
	logger *slog.Logger
}

func NewActivationRepository(logger *slog.Logger) *ActivationRepository {
	return &ActivationRepository{logger: logger}
}

func (r *ActivationRepository) Create(ctx context.Context, tx db.DBTX, a *promocode.Activation) error {
	if _, err := tx.Exec(ctx, insertActivationSQL,
		a.ID(), a.PromocodeID(), a.UserID(), a.Code(), pgconv.TimeToPgtype(a.CreatedAt()),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create activation", err)
	}
	return nil
}
