package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock promocode-service/internal/usecase/commands ActivationCommands,AuthCommands,EngagementCommands,ProfileCommands,PromocodeCommands

import (
	"context"
	"log/slog"
	"time"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrActivationFailed marks every activation failure that is not a business
// rejection. Callers should treat it as an internal error.
var ErrActivationFailed = errs.New("activation failed")

var errUnavailableInTx = errs.New("promocode became unavailable")

type RejectionReason string

const (
	RejectionNotFound     RejectionReason = "NOT_FOUND"
	RejectionNotEligible  RejectionReason = "NOT_ELIGIBLE"
	RejectionExhausted    RejectionReason = "EXHAUSTED"
	RejectionFlaggedFraud RejectionReason = "FLAGGED_FRAUD"
)

// Activation outcomes reported to the observer.
const (
	OutcomeActivated = "activated"
	OutcomeFailed    = "failed"
)

// ActivationResult carries either the issued code or the rejection reason.
type ActivationResult struct {
	PromocodeID uuid.UUID
	Code        string
	Rejection   RejectionReason
}

func (r ActivationResult) Rejected() bool {
	return r.Rejection != ""
}

type ActivationSettings struct {
	// Location decides which calendar day active_from / active_until refer to.
	Location *time.Location
	// MaxAttempts bounds how often a lost unique-code race is retried.
	MaxAttempts int
}

type ActivationCommands interface {
	Activate(ctx context.Context, promoID, userID uuid.UUID) (ActivationResult, error)
}

type activationCommandsImpl struct {
	uow      shared.UnitOfWork
	fraud    shared.FraudValidator
	clock    clock.Clock
	settings ActivationSettings
	observer shared.ActivationObserver
	logger   *slog.Logger
}

func NewActivationCommands(
	uow shared.UnitOfWork,
	fraud shared.FraudValidator,
	clk clock.Clock,
	settings ActivationSettings,
	observer shared.ActivationObserver,
	logger *slog.Logger,
) ActivationCommands {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = 1
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &activationCommandsImpl{
		uow:      uow,
		fraud:    fraud,
		clock:    clk,
		settings: settings,
		observer: observer,
		logger:   logger,
	}
}

// Activate checks existence, targeting, availability and anti-fraud in that
// order, stopping at the first failure without touching state. Only then is a
// code allocated and the activation stored, in a single transaction.
func (uc *activationCommandsImpl) Activate(ctx context.Context, promoID, userID uuid.UUID) (ActivationResult, error) {
	reads := uc.uow.CommandReads()

	promo, err := reads.PromocodeByID(ctx, promoID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uc.reject(promoID, RejectionNotFound), nil
		}
		return uc.fail(err)
	}

	usr, err := reads.UserByID(ctx, userID)
	if err != nil {
		return uc.fail(err)
	}

	if !promo.Target().Matches(usr.Profile()) {
		return uc.reject(promoID, RejectionNotEligible), nil
	}

	asOf := promocode.AsOfDate(uc.clock.Now(), uc.settings.Location)
	if !promo.IsActive(asOf) {
		return uc.reject(promoID, RejectionExhausted), nil
	}

	if decision := uc.fraud.Validate(ctx, usr.Email().Value(), promoID.String()); !decision.OK {
		return uc.reject(promoID, RejectionFlaggedFraud), nil
	}

	code, err := uc.allocate(ctx, promoID, userID, asOf)
	if err != nil {
		if errs.Is(err, errUnavailableInTx) {
			return uc.reject(promoID, RejectionExhausted), nil
		}
		return uc.fail(err)
	}

	uc.observer.ObserveActivation(OutcomeActivated)
	return ActivationResult{PromocodeID: promoID, Code: code}, nil
}

func (uc *activationCommandsImpl) allocate(ctx context.Context, promoID, userID uuid.UUID, asOf time.Time) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= uc.settings.MaxAttempts; attempt++ {
		var code string
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			// The row lock queues concurrent activations of one promocode, so the
			// COMMON count and the UNIQUE offset are read after the previous
			// winner commits. The UNIQUE compare-and-swap stays as a guard.
			p, lerr := tx.Promocodes().FindByIDForUpdate(ctx, tx.DB(), promoID)
			if lerr != nil {
				return lerr
			}
			if !p.IsActive(asOf) {
				return errUnavailableInTx
			}

			alloc, lerr := p.Allocate()
			if lerr != nil {
				return errs.Mark(lerr, errUnavailableInTx)
			}
			if p.Mode() == promocode.ModeUnique {
				if lerr = tx.Promocodes().AppendActivatedCode(ctx, tx.DB(), promoID, alloc.Offset, alloc.Code); lerr != nil {
					return lerr
				}
			}

			activation := promocode.NewActivation(promoID, userID, alloc.Code, uc.clock.Now())
			if lerr = tx.Activations().Create(ctx, tx.DB(), activation); lerr != nil {
				return lerr
			}
			code = alloc.Code
			return nil
		})
		if err == nil {
			return code, nil
		}
		if !errs.Is(err, shared.ErrAllocationConflict) {
			return "", err
		}

		lastErr = err
		uc.logger.Info("unique code allocation conflict, retrying",
			slog.String("promo_id", promoID.String()),
			slog.Int("attempt", attempt))
	}
	return "", lastErr
}

func (uc *activationCommandsImpl) reject(promoID uuid.UUID, reason RejectionReason) ActivationResult {
	uc.observer.ObserveActivation(string(reason))
	return ActivationResult{PromocodeID: promoID, Rejection: reason}
}

func (uc *activationCommandsImpl) fail(err error) (ActivationResult, error) {
	uc.observer.ObserveActivation(OutcomeFailed)
	return ActivationResult{}, errs.Mark(err, ErrActivationFailed)
}
