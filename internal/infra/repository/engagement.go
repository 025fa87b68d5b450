package repository

import (
	"context"
	"log/slog"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertLikeSQL = `
INSERT INTO promocode_likes (promocode_id, user_id) VALUES ($1, $2)
ON CONFLICT (promocode_id, user_id) DO NOTHING`

	deleteLikeSQL = `DELETE FROM promocode_likes WHERE promocode_id = $1 AND user_id = $2`

	insertCommentSQL = `
INSERT INTO promocode_comments (id, promocode_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)`

	updateCommentSQL = `UPDATE promocode_comments SET text = $2 WHERE id = $1`

	deleteCommentSQL = `DELETE FROM promocode_comments WHERE id = $1`
)

// LikeRepository writes are idempotent: liking twice or unliking a missing like is a no-op.
type LikeRepository struct {
	logger *slog.Logger
}

func NewLikeRepository(logger *slog.Logger) *LikeRepository {
	return &LikeRepository{logger: logger}
}

func (r *LikeRepository) Add(ctx context.Context, tx db.DBTX, promocodeID, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, insertLikeSQL, promocodeID, userID); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to add like", err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, tx db.DBTX, promocodeID, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, deleteLikeSQL, promocodeID, userID); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to remove like", err)
	}
	return nil
}

type CommentRepository struct {
	logger *slog.Logger
}

func NewCommentRepository(logger *slog.Logger) *CommentRepository {
	return &CommentRepository{logger: logger}
}

func (r *CommentRepository) Create(ctx context.Context, tx db.DBTX, c *promocode.Comment) error {
	if _, err := tx.Exec(ctx, insertCommentSQL,
		c.ID(), c.PromocodeID(), c.AuthorID(), c.Text(), pgconv.TimeToPgtype(c.CreatedAt()),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create comment", err)
	}
	return nil
}

func (r *CommentRepository) Update(ctx context.Context, tx db.DBTX, c *promocode.Comment) error {
	tag, err := tx.Exec(ctx, updateCommentSQL, c.ID(), c.Text())
	if err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to update comment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "comment not found", nil)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteCommentSQL, id)
	if err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to delete comment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "comment not found", nil)
	}
	return nil
}
