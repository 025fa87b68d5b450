package commands

import (
	"context"
	"time"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPromocodeNotFound = errs.New("promocode not found")
	ErrPromocodeNotOwned = errs.New("promocode not owned by business")
	ErrEmptyPatch        = errs.New("nothing to update")
)

type TargetInput struct {
	AgeFrom    *int
	AgeUntil   *int
	Country    *string
	Categories []string
}

func (t TargetInput) toDomain() (promocode.Target, error) {
	return promocode.NewTarget(t.AgeFrom, t.AgeUntil, t.Country, t.Categories)
}

type CreatePromocodeRequest struct {
	Description string
	ImageURL    *string
	Target      TargetInput
	MaxCount    int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	Mode        string
	PromoCommon *string
	PromoUnique []string
}

type UpdatePromocodeRequest struct {
	Description *string
	ImageURL    *string
	Target      *TargetInput
	MaxCount    *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
}

type PromocodeCommands interface {
	Create(ctx context.Context, req CreatePromocodeRequest, businessID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePromocodeRequest, businessID uuid.UUID) error
}

type promocodeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromocodeCommands(uow shared.UnitOfWork, clk clock.Clock) PromocodeCommands {
	return &promocodeCommandsImpl{uow: uow, clock: clk}
}

func (uc *promocodeCommandsImpl) Create(ctx context.Context, req CreatePromocodeRequest, businessID uuid.UUID) (uuid.UUID, error) {
	target, err := req.Target.toDomain()
	if err != nil {
		return uuid.Nil, err
	}
	mode, err := promocode.NewMode(req.Mode)
	if err != nil {
		return uuid.Nil, err
	}
	p, err := promocode.NewPromocode(promocode.NewParams{
		BusinessID:  businessID,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Target:      target,
		Mode:        mode,
		MaxCount:    req.MaxCount,
		CommonCode:  req.PromoCommon,
		UniqueCodes: req.PromoUnique,
		ActiveFrom:  req.ActiveFrom,
		ActiveUntil: req.ActiveUntil,
		CreatedAt:   uc.clock.Now(),
	})
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Promocodes().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *promocodeCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdatePromocodeRequest, businessID uuid.UUID) error {
	pt := promocode.Patch{
		Description: req.Description,
		ImageURL:    req.ImageURL,
		MaxCount:    req.MaxCount,
		ActiveFrom:  req.ActiveFrom,
		ActiveUntil: req.ActiveUntil,
	}
	if req.Target != nil {
		target, err := req.Target.toDomain()
		if err != nil {
			return err
		}
		pt.Target = &target
	}
	if pt.IsEmpty() {
		return ErrEmptyPatch
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// locked so that max_count is checked against a stable activation count
		p, err := tx.Promocodes().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPromocodeNotFound
			}
			return err
		}
		if !p.IsOwnedBy(businessID) {
			return ErrPromocodeNotOwned
		}
		if err := p.ApplyPatch(pt); err != nil {
			return err
		}
		return tx.Promocodes().Update(ctx, tx.DB(), p)
	})
}
