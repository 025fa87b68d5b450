package repository

import (
	"context"
	"log/slog"
	"time"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertTargetSQL = `
INSERT INTO promocode_targets (id, age_from, age_until, country, categories)
VALUES ($1, $2, $3, $4, $5)`

	insertPromocodeSQL = `
INSERT INTO promocodes (
    id, business_id, target_id, description, image_url, mode, max_count,
    promo_common, promo_unique, active_from, active_until, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	selectPromocodeSQL = `
SELECT p.id, p.business_id, p.description, p.image_url, p.mode, p.max_count,
       p.promo_common, p.promo_unique, p.promo_unique_activated,
       p.active_from, p.active_until, p.created_at,
       t.age_from, t.age_until, t.country, t.categories,
       (SELECT count(*) FROM promocode_activations a WHERE a.promocode_id = p.id) AS activation_count
FROM promocodes p
JOIN promocode_targets t ON t.id = p.target_id
WHERE p.id = $1`

	lockPromocodeSQL = `SELECT id FROM promocodes WHERE id = $1 FOR UPDATE`

	updatePromocodeSQL = `
UPDATE promocodes
SET description = $2, image_url = $3, max_count = $4, active_from = $5, active_until = $6
WHERE id = $1`

	updateTargetSQL = `
UPDATE promocode_targets t
SET age_from = $2, age_until = $3, country = $4, categories = $5
FROM promocodes p
WHERE p.id = $1 AND t.id = p.target_id`

	appendActivatedCodeSQL = `
UPDATE promocodes
SET promo_unique_activated = promo_unique_activated || ARRAY[$3::text]
WHERE id = $1 AND cardinality(promo_unique_activated) = $2`
)

type PromocodeRepository struct {
	logger *slog.Logger
}

func NewPromocodeRepository(logger *slog.Logger) *PromocodeRepository {
	return &PromocodeRepository{logger: logger}
}

func (r *PromocodeRepository) Create(ctx context.Context, tx db.DBTX, p *promocode.Promocode) error {
	targetID := uuid.New()
	t := p.Target()
	if _, err := tx.Exec(ctx, insertTargetSQL,
		targetID,
		pgconv.IntPtrToPgtype(t.AgeFrom()),
		pgconv.IntPtrToPgtype(t.AgeUntil()),
		pgconv.StringPtrToPgtype(t.Country()),
		t.Categories(),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create promocode target", err)
	}

	if _, err := tx.Exec(ctx, insertPromocodeSQL,
		p.ID(),
		p.BusinessID(),
		targetID,
		p.Description(),
		pgconv.StringPtrToPgtype(p.ImageURL()),
		p.Mode().String(),
		p.MaxCount(),
		pgconv.StringPtrToPgtype(p.CommonCode()),
		nonNil(p.UniqueCodes()),
		pgconv.DatePtrToPgtype(p.ActiveFrom()),
		pgconv.DatePtrToPgtype(p.ActiveUntil()),
		pgconv.TimeToPgtype(p.CreatedAt()),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to create promocode", err)
	}
	return nil
}

func (r *PromocodeRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promocode.Promocode, error) {
	return scanPromocode(ctx, r.logger, tx, id)
}

func (r *PromocodeRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promocode.Promocode, error) {
	var locked uuid.UUID
	if err := tx.QueryRow(ctx, lockPromocodeSQL, id).Scan(&locked); err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to lock promocode", err)
	}
	return scanPromocode(ctx, r.logger, tx, id)
}

func (r *PromocodeRepository) Update(ctx context.Context, tx db.DBTX, p *promocode.Promocode) error {
	tag, err := tx.Exec(ctx, updatePromocodeSQL,
		p.ID(),
		p.Description(),
		pgconv.StringPtrToPgtype(p.ImageURL()),
		p.MaxCount(),
		pgconv.DatePtrToPgtype(p.ActiveFrom()),
		pgconv.DatePtrToPgtype(p.ActiveUntil()),
	)
	if err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to update promocode", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "promocode not found", nil)
	}

	t := p.Target()
	if _, err := tx.Exec(ctx, updateTargetSQL,
		p.ID(),
		pgconv.IntPtrToPgtype(t.AgeFrom()),
		pgconv.IntPtrToPgtype(t.AgeUntil()),
		pgconv.StringPtrToPgtype(t.Country()),
		t.Categories(),
	); err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to update promocode target", err)
	}
	return nil
}

func (r *PromocodeRepository) AppendActivatedCode(ctx context.Context, tx db.DBTX, id uuid.UUID, expected int, code string) error {
	tag, err := tx.Exec(ctx, appendActivatedCodeSQL, id, expected, code)
	if err != nil {
		return infra.ClassifyRepoErr(r.logger, "failed to append activated code", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrAllocationConflict
	}
	return nil
}

// nonNil keeps pgx from encoding an empty list as NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanPromocode(ctx context.Context, logger *slog.Logger, tx db.DBTX, id uuid.UUID) (*promocode.Promocode, error) {
	var (
		pid, businessID     uuid.UUID
		description, mode   string
		imageURL, common    pgtype.Text
		maxCount            int
		unique, activated   []string
		activeFrom, activeU pgtype.Date
		createdAt           time.Time
		ageFrom, ageUntil   pgtype.Int4
		country             pgtype.Text
		categories          []string
		activationCount     int64
	)
	err := tx.QueryRow(ctx, selectPromocodeSQL, id).Scan(
		&pid, &businessID, &description, &imageURL, &mode, &maxCount,
		&common, &unique, &activated,
		&activeFrom, &activeU, &createdAt,
		&ageFrom, &ageUntil, &country, &categories,
		&activationCount,
	)
	if err != nil {
		return nil, infra.ClassifyRepoErr(logger, "failed to get promocode by id", err)
	}

	// stored rows were validated on the way in
	target, err := promocode.NewTarget(
		pgconv.IntPtrFromPgtype(ageFrom),
		pgconv.IntPtrFromPgtype(ageUntil),
		pgconv.StringPtrFromPgtype(country),
		categories,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "stored promocode target is invalid", err)
	}

	return promocode.ReconstructPromocode(promocode.ReconstructParams{
		ID:              pid,
		BusinessID:      businessID,
		Description:     description,
		ImageURL:        pgconv.StringPtrFromPgtype(imageURL),
		Target:          target,
		Mode:            promocode.Mode(mode),
		MaxCount:        maxCount,
		CommonCode:      pgconv.StringPtrFromPgtype(common),
		UniqueCodes:     unique,
		ActivatedCodes:  activated,
		ActiveFrom:      pgconv.DatePtrFromPgtype(activeFrom),
		ActiveUntil:     pgconv.DatePtrFromPgtype(activeU),
		ActivationCount: int(activationCount),
		CreatedAt:       createdAt,
	}), nil
}
