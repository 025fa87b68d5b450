package commands

import (
	"context"

	"github.com/google/uuid"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/shared"
)

var (
	ErrCommentNotFound = errs.New("comment not found")
	ErrCommentNotOwned = errs.New("comment not owned by user")
)

type EngagementCommands interface {
	Like(ctx context.Context, promocodeID, userID uuid.UUID) error
	Unlike(ctx context.Context, promocodeID, userID uuid.UUID) error
	AddComment(ctx context.Context, promocodeID, userID uuid.UUID, text string) (uuid.UUID, error)
	EditComment(ctx context.Context, promocodeID, commentID, userID uuid.UUID, text string) error
	DeleteComment(ctx context.Context, promocodeID, commentID, userID uuid.UUID) error
}

type engagementCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEngagementCommands(uow shared.UnitOfWork, clk clock.Clock) EngagementCommands {
	return &engagementCommandsImpl{uow: uow, clock: clk}
}

// Like is idempotent; liking twice keeps a single like.
func (uc *engagementCommandsImpl) Like(ctx context.Context, promocodeID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Likes().Add(ctx, tx.DB(), promocodeID, userID)
	})
	return mapPromocodeFK(err)
}

func (uc *engagementCommandsImpl) Unlike(ctx context.Context, promocodeID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requirePromocode(ctx, tx, promocodeID); err != nil {
			return err
		}
		return tx.Likes().Remove(ctx, tx.DB(), promocodeID, userID)
	})
}

func (uc *engagementCommandsImpl) AddComment(ctx context.Context, promocodeID, userID uuid.UUID, text string) (uuid.UUID, error) {
	c, err := promocode.NewComment(promocodeID, userID, text, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Comments().Create(ctx, tx.DB(), c)
	})
	if err := mapPromocodeFK(err); err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *engagementCommandsImpl) EditComment(ctx context.Context, promocodeID, commentID, userID uuid.UUID, text string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := ownedComment(ctx, tx, promocodeID, commentID, userID)
		if err != nil {
			return err
		}
		if err := c.Edit(text); err != nil {
			return err
		}
		return tx.Comments().Update(ctx, tx.DB(), c)
	})
}

func (uc *engagementCommandsImpl) DeleteComment(ctx context.Context, promocodeID, commentID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := ownedComment(ctx, tx, promocodeID, commentID, userID); err != nil {
			return err
		}
		err := tx.Comments().Delete(ctx, tx.DB(), commentID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCommentNotFound
		}
		return err
	})
}

func ownedComment(ctx context.Context, tx shared.Tx, promocodeID, commentID, userID uuid.UUID) (*promocode.Comment, error) {
	if err := requirePromocode(ctx, tx, promocodeID); err != nil {
		return nil, err
	}
	c, err := tx.Reads().CommentByID(ctx, commentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if c.PromocodeID() != promocodeID {
		return nil, ErrCommentNotFound
	}
	if !c.IsAuthoredBy(userID) {
		return nil, ErrCommentNotOwned
	}
	return c, nil
}

func requirePromocode(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	if _, err := tx.Reads().PromocodeByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromocodeNotFound
		}
		return err
	}
	return nil
}

func mapPromocodeFK(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrPromocodeNotFound
	}
	return err
}
