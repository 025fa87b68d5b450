package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// activeExpr mirrors promocode.IsActive in SQL; %[1]s is the as-of date placeholder.
const activeExpr = `(
    (p.active_from IS NULL OR p.active_from <= %[1]s::date) AND
    (p.active_until IS NULL OR p.active_until >= %[1]s::date) AND
    CASE p.mode
        WHEN 'COMMON' THEN (SELECT count(*) FROM promocode_activations a WHERE a.promocode_id = p.id) < p.max_count
        ELSE cardinality(p.promo_unique) > cardinality(p.promo_unique_activated)
    END
)`

const usedCountExpr = `CASE p.mode
        WHEN 'UNIQUE' THEN cardinality(p.promo_unique_activated)
        ELSE (SELECT count(*) FROM promocode_activations a WHERE a.promocode_id = p.id)
    END`

const likeCountExpr = `(SELECT count(*) FROM promocode_likes l WHERE l.promocode_id = p.id)`

// %[1]s active placeholder
const ownerColumns = `p.id, p.business_id, b.name, p.description, p.image_url, p.mode, p.max_count,
       p.promo_common, p.promo_unique, p.active_from, p.active_until, p.created_at,
       t.age_from, t.age_until, t.country, t.categories,
       ` + likeCountExpr + ` AS like_count,
       ` + usedCountExpr + ` AS used_count,
       ` + activeExpr + ` AS active`

const promocodeFrom = `
FROM promocodes p
JOIN promocode_targets t ON t.id = p.target_id
JOIN businesses b ON b.id = p.business_id`

// %[1]s as-of date, %[2]s user id
const userColumns = `p.id, p.business_id, b.name, p.description, p.image_url,
       ` + activeExpr + ` AS active,
       EXISTS (SELECT 1 FROM promocode_activations a WHERE a.promocode_id = p.id AND a.user_id = %[2]s) AS is_activated_by_user,
       ` + likeCountExpr + ` AS like_count,
       EXISTS (SELECT 1 FROM promocode_likes l WHERE l.promocode_id = p.id AND l.user_id = %[2]s) AS is_liked_by_user,
       (SELECT count(*) FROM promocode_comments c WHERE c.promocode_id = p.id) AS comment_count`

const businessFilter = `
WHERE p.business_id = $1
  AND (cardinality($2::text[]) = 0 OR t.country IS NULL OR t.country = ANY($2::text[]))`

// feedFilter: $1 as-of, $2 age, $3 country, $4 category, $5 active filter
var feedFilter = `
WHERE (t.age_from IS NULL OR t.age_from <= $2)
  AND (t.age_until IS NULL OR t.age_until >= $2)
  AND (t.country IS NULL OR t.country = $3)
  AND ($4 = '' OR EXISTS (SELECT 1 FROM unnest(t.categories) cat WHERE lower(cat) = lower($4)))
  AND ($5::boolean IS NULL OR ` + fmt.Sprintf(activeExpr, "$1") + ` = $5::boolean)`

var (
	findPromocodeViewSQL = "SELECT " + fmt.Sprintf(ownerColumns, "$2") + promocodeFrom + "\nWHERE p.id = $1"

	countBusinessSQL = "SELECT count(*)" + promocodeFrom + businessFilter

	findForUserSQL = "SELECT " + fmt.Sprintf(userColumns, "$3", "$2") + promocodeFrom + "\nWHERE p.id = $1"

	countFeedSQL = "SELECT count(*)" + promocodeFrom + feedFilter
	listFeedSQL  = "SELECT " + fmt.Sprintf(userColumns, "$1", "$6") + promocodeFrom + feedFilter +
		"\nORDER BY p.created_at DESC, p.id\nLIMIT $7 OFFSET $8"

	listHistorySQL = "SELECT " + fmt.Sprintf(userColumns, "$2", "$1") + `
FROM (
    SELECT promocode_id, max(created_at) AS last_at
    FROM promocode_activations
    WHERE user_id = $1
    GROUP BY promocode_id
) h
JOIN promocodes p ON p.id = h.promocode_id
JOIN promocode_targets t ON t.id = p.target_id
JOIN businesses b ON b.id = p.business_id
ORDER BY h.last_at DESC, p.id
LIMIT $3 OFFSET $4`

	countHistoryPromocodesSQL = `SELECT count(DISTINCT promocode_id) FROM promocode_activations WHERE user_id = $1`

	statTotalSQL     = `SELECT count(*) FROM promocode_activations WHERE promocode_id = $1`
	statCountriesSQL = `
SELECT u.country, count(*)
FROM promocode_activations a
JOIN users u ON u.id = a.user_id
WHERE a.promocode_id = $1
GROUP BY u.country
ORDER BY u.country`

	existsPromocodeSQL = `SELECT EXISTS (SELECT 1 FROM promocodes WHERE id = $1)`
)

func listBusinessSQL(sort queries.SortBy) string {
	order := "p.created_at DESC, p.id"
	switch sort {
	case queries.SortByActiveFrom:
		order = "p.active_from DESC NULLS LAST, p.created_at DESC, p.id"
	case queries.SortByActiveUntil:
		order = "p.active_until DESC NULLS LAST, p.created_at DESC, p.id"
	}
	return "SELECT " + fmt.Sprintf(ownerColumns, "$3") + promocodeFrom + businessFilter +
		"\nORDER BY " + order + "\nLIMIT $4 OFFSET $5"
}

type PromocodeReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPromocodeReadStore(dbtx db.DBTX, logger *slog.Logger) *PromocodeReadStore {
	return &PromocodeReadStore{db: dbtx, logger: logger}
}

func (r *PromocodeReadStore) ListByBusiness(ctx context.Context, f queries.BusinessListFilter) ([]*queries.PromocodeView, int, error) {
	countries := f.Countries
	if countries == nil {
		countries = []string{}
	}

	var total int
	if err := r.db.QueryRow(ctx, countBusinessSQL, f.BusinessID, countries).Scan(&total); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to count business promocodes", err)
	}

	rows, err := r.db.Query(ctx, listBusinessSQL(f.SortBy), f.BusinessID, countries, asOfParam(f.AsOf), f.Limit, f.Offset)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to list business promocodes", err)
	}
	defer rows.Close()

	views := make([]*queries.PromocodeView, 0, f.Limit)
	for rows.Next() {
		v, serr := scanPromocodeView(rows)
		if serr != nil {
			return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to scan business promocode", serr)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to iterate business promocodes", err)
	}
	return views, total, nil
}

func (r *PromocodeReadStore) FindByID(ctx context.Context, id uuid.UUID, asOf time.Time) (*queries.PromocodeView, error) {
	v, err := scanPromocodeView(r.db.QueryRow(ctx, findPromocodeViewSQL, id, asOfParam(asOf)))
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get promocode view by id", err)
	}
	return v, nil
}

func (r *PromocodeReadStore) Stat(ctx context.Context, id uuid.UUID) (*queries.PromocodeStatView, error) {
	var total int
	if err := r.db.QueryRow(ctx, statTotalSQL, id).Scan(&total); err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to count activations", err)
	}

	rows, err := r.db.Query(ctx, statCountriesSQL, id)
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to count activations by country", err)
	}
	defer rows.Close()

	stat := &queries.PromocodeStatView{ActivationsCount: total}
	for rows.Next() {
		var cs queries.CountryStat
		if err := rows.Scan(&cs.Country, &cs.ActivationsCount); err != nil {
			return nil, infra.ClassifyRepoErr(r.logger, "failed to scan country stat", err)
		}
		stat.Countries = append(stat.Countries, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to iterate country stats", err)
	}
	return stat, nil
}

func (r *PromocodeReadStore) Feed(ctx context.Context, f queries.FeedFilter) ([]*queries.UserPromocodeView, int, error) {
	active := pgtype.Bool{}
	if f.Active != nil {
		active = pgtype.Bool{Bool: *f.Active, Valid: true}
	}
	args := []any{asOfParam(f.AsOf), f.Age, f.Country, f.Category, active}

	var total int
	if err := r.db.QueryRow(ctx, countFeedSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to count feed", err)
	}

	rows, err := r.db.Query(ctx, listFeedSQL, append(args, f.UserID, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to list feed", err)
	}
	views, err := collectUserViews(rows)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to scan feed", err)
	}
	return views, total, nil
}

func (r *PromocodeReadStore) FindForUser(ctx context.Context, id, userID uuid.UUID, asOf time.Time) (*queries.UserPromocodeView, error) {
	v, err := scanUserView(r.db.QueryRow(ctx, findForUserSQL, id, userID, asOfParam(asOf)))
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get promocode for user", err)
	}
	return v, nil
}

// History lists each activated promocode once, most recent activation first.
func (r *PromocodeReadStore) History(ctx context.Context, userID uuid.UUID, asOf time.Time, limit, offset int) ([]*queries.UserPromocodeView, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, countHistoryPromocodesSQL, userID).Scan(&total); err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to count history", err)
	}

	rows, err := r.db.Query(ctx, listHistorySQL, userID, asOfParam(asOf), limit, offset)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to list history", err)
	}
	views, err := collectUserViews(rows)
	if err != nil {
		return nil, 0, infra.ClassifyRepoErr(r.logger, "failed to scan history", err)
	}
	return views, total, nil
}

func (r *PromocodeReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, existsPromocodeSQL, id).Scan(&ok); err != nil {
		return false, infra.ClassifyRepoErr(r.logger, "failed to check promocode existence", err)
	}
	return ok, nil
}

func asOfParam(asOf time.Time) pgtype.Date {
	return pgconv.DatePtrToPgtype(&asOf)
}

func scanPromocodeView(row pgx.Row) (*queries.PromocodeView, error) {
	var (
		v                       queries.PromocodeView
		imageURL, common        pgtype.Text
		unique                  []string
		activeFrom, activeUntil pgtype.Date
		ageFrom, ageUntil       pgtype.Int4
		country                 pgtype.Text
		categories              []string
		likeCount, usedCount    int64
	)
	if err := row.Scan(
		&v.ID, &v.BusinessID, &v.BusinessName, &v.Description, &imageURL, &v.Mode, &v.MaxCount,
		&common, &unique, &activeFrom, &activeUntil, &v.CreatedAt,
		&ageFrom, &ageUntil, &country, &categories,
		&likeCount, &usedCount, &v.Active,
	); err != nil {
		return nil, err
	}

	v.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	v.PromoCommon = pgconv.StringPtrFromPgtype(common)
	v.PromoUnique = unique
	v.ActiveFrom = pgconv.DatePtrFromPgtype(activeFrom)
	v.ActiveUntil = pgconv.DatePtrFromPgtype(activeUntil)
	v.Target = queries.TargetView{
		AgeFrom:    pgconv.IntPtrFromPgtype(ageFrom),
		AgeUntil:   pgconv.IntPtrFromPgtype(ageUntil),
		Country:    pgconv.StringPtrFromPgtype(country),
		Categories: categories,
	}
	v.LikeCount = int(likeCount)
	v.UsedCount = int(usedCount)
	return &v, nil
}

func scanUserView(row pgx.Row) (*queries.UserPromocodeView, error) {
	var (
		v                       queries.UserPromocodeView
		imageURL                pgtype.Text
		likeCount, commentCount int64
	)
	if err := row.Scan(
		&v.ID, &v.BusinessID, &v.BusinessName, &v.Description, &imageURL,
		&v.Active, &v.IsActivatedByUser, &likeCount, &v.IsLikedByUser, &commentCount,
	); err != nil {
		return nil, err
	}
	v.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	v.LikeCount = int(likeCount)
	v.CommentCount = int(commentCount)
	return &v, nil
}

func collectUserViews(rows pgx.Rows) ([]*queries.UserPromocodeView, error) {
	defer rows.Close()
	views := []*queries.UserPromocodeView{}
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
