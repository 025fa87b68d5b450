package readstore

import (
	"context"
	"log/slog"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	commentViewColumns = `c.id, c.promocode_id, c.text, c.created_at, u.name, u.surname, u.avatar_url`

	countCommentsSQL = `SELECT count(*) FROM promocode_comments WHERE promocode_id = $1`
	listCommentsSQL  = `
SELECT ` + commentViewColumns + `
FROM promocode_comments c
JOIN users u ON u.id = c.author_id
WHERE c.promocode_id = $1
ORDER BY c.created_at DESC, c.id
LIMIT $2 OFFSET $3`

	findCommentViewSQL = `
SELECT ` + commentViewColumns + `
FROM promocode_comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = $1`

	findCommentSQL = `SELECT id, promocode_id, author_id, text, created_at FROM promocode_comments WHERE id = $1`
)

type CommentReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCommentReadStore(dbtx db.DBTX, logger *slog.Logger) *CommentReadStore {
	return &CommentReadStore{db: dbtx, logger: logger}
}

func (r *CommentReadStore) ListByPromocode(ctx context.Context, promocodeID uuid.UUID, limit, offset int) ([]*queries.CommentView, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, countCommentsSQL, promocodeID).Scan(&total); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to count comments", err)
	}

	rows, err := r.db.Query(ctx, listCommentsSQL, promocodeID, limit, offset)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to list comments", err)
	}
	defer rows.Close()

	views := []*queries.CommentView{}
	for rows.Next() {
		v, serr := scanCommentView(rows)
		if serr != nil {
			return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to scan comment", serr)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to iterate comments", err)
	}
	return views, total, nil
}

func (r *CommentReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	v, err := scanCommentView(r.db.QueryRow(ctx, findCommentViewSQL, id))
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get comment view", err)
	}
	return v, nil
}

func (r *CommentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promocode.Comment, error) {
	var (
		cid, promocodeID, authorID uuid.UUID
		text                       string
		createdAt                  pgtype.Timestamptz
	)
	if err := r.db.QueryRow(ctx, findCommentSQL, id).Scan(&cid, &promocodeID, &authorID, &text, &createdAt); err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get comment", err)
	}
	return promocode.ReconstructComment(cid, promocodeID, authorID, text, createdAt.Time), nil
}

func scanCommentView(row pgx.Row) (*queries.CommentView, error) {
	var (
		v         queries.CommentView
		avatarURL pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.PromocodeID, &v.Text, &v.CreatedAt, &v.Author.Name, &v.Author.Surname, &avatarURL); err != nil {
		return nil, err
	}
	v.Author.AvatarURL = pgconv.StringPtrFromPgtype(avatarURL)
	return &v, nil
}
