package queries

import (
	"context"

	"github.com/google/uuid"

	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/errs"
)

var ErrCommentNotFound = errs.New("comment not found")

type CommentReadStore interface {
	ListByPromocode(ctx context.Context, promocodeID uuid.UUID, limit, offset int) ([]*CommentView, int, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
}

type CommentQueries interface {
	List(ctx context.Context, promocodeID uuid.UUID, page Page) ([]*CommentView, int, error)
	Get(ctx context.Context, promocodeID, id uuid.UUID) (*CommentView, error)
}

type commentQueriesImpl struct {
	comments   CommentReadStore
	promocodes PromocodeReadStore
}

func NewCommentQueries(comments CommentReadStore, promocodes PromocodeReadStore) CommentQueries {
	return &commentQueriesImpl{comments: comments, promocodes: promocodes}
}

func (q *commentQueriesImpl) List(ctx context.Context, promocodeID uuid.UUID, page Page) ([]*CommentView, int, error) {
	limit, offset, err := page.Normalize()
	if err != nil {
		return nil, 0, err
	}
	ok, err := q.promocodes.Exists(ctx, promocodeID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrPromocodeNotFound
	}
	return q.comments.ListByPromocode(ctx, promocodeID, limit, offset)
}

// Get answers ErrCommentNotFound for a comment posted under another promocode.
func (q *commentQueriesImpl) Get(ctx context.Context, promocodeID, id uuid.UUID) (*CommentView, error) {
	view, err := q.comments.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if view.PromocodeID != promocodeID {
		return nil, ErrCommentNotFound
	}
	return view, nil
}
