package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/infra/readstore"
	"promocode-service/internal/infra/repository"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is satisfied by *pgxpool.Pool and pgxmock pools.
type TxBeginner interface {
	db.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool   TxBeginner
	logger *slog.Logger
}

func NewPostgresUoW(pool TxBeginner, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool, u.logger)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:   pgxTx,
			logger: u.logger,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx   db.DBTX
	logger *slog.Logger

	// Lazy-initialized repositories
	promocodeRepo  shared.PromocodeRepository
	activationRepo shared.ActivationRepository
	userRepo       shared.UserRepository
	businessRepo   shared.BusinessRepository
	likeRepo       shared.LikeRepository
	commentRepo    shared.CommentRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Promocodes() shared.PromocodeRepository {
	if t.promocodeRepo == nil {
		t.promocodeRepo = repository.NewPromocodeRepository(t.logger)
	}
	return t.promocodeRepo
}

func (t *pgTx) Activations() shared.ActivationRepository {
	if t.activationRepo == nil {
		t.activationRepo = repository.NewActivationRepository(t.logger)
	}
	return t.activationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.logger)
	}
	return t.userRepo
}

func (t *pgTx) Businesses() shared.BusinessRepository {
	if t.businessRepo == nil {
		t.businessRepo = repository.NewBusinessRepository(t.logger)
	}
	return t.businessRepo
}

func (t *pgTx) Likes() shared.LikeRepository {
	if t.likeRepo == nil {
		t.likeRepo = repository.NewLikeRepository(t.logger)
	}
	return t.likeRepo
}

func (t *pgTx) Comments() shared.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository(t.logger)
	}
	return t.commentRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx, t.logger)
	}
	return t.commandReads
}

type commandReads struct {
	dbtx       db.DBTX
	promocodes *repository.PromocodeRepository
	accounts   *readstore.AccountReadStore
	comments   *readstore.CommentReadStore
}

func newCommandReads(dbtx db.DBTX, logger *slog.Logger) *commandReads {
	return &commandReads{
		dbtx:       dbtx,
		promocodes: repository.NewPromocodeRepository(logger),
		accounts:   readstore.NewAccountReadStore(dbtx, logger),
		comments:   readstore.NewCommentReadStore(dbtx, logger),
	}
}

func (r *commandReads) PromocodeByID(ctx context.Context, id uuid.UUID) (*promocode.Promocode, error) {
	return r.promocodes.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.accounts.FindUserByID(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.accounts.FindUserByEmail(ctx, email)
}

func (r *commandReads) BusinessByEmail(ctx context.Context, email string) (*business.Business, error) {
	return r.accounts.FindBusinessByEmail(ctx, email)
}

func (r *commandReads) CommentByID(ctx context.Context, id uuid.UUID) (*promocode.Comment, error) {
	return r.comments.FindByID(ctx, id)
}

func (r *commandReads) TokenVersion(ctx context.Context, role user.Role, id uuid.UUID) (int64, error) {
	return r.accounts.TokenVersion(ctx, role, id)
}
