package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock promocode-service/internal/usecase/queries CommentQueries,PromocodeQueries,UserQueries

import (
	"context"
	"time"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPromocodeNotFound = errs.New("promocode not found")
	ErrPromocodeAccess   = errs.New("promocode belongs to another business")
	ErrInvalidSort       = errs.New("sort_by must be active_from or active_until")
)

type SortBy string

const (
	SortByCreatedAt   SortBy = ""
	SortByActiveFrom  SortBy = "active_from"
	SortByActiveUntil SortBy = "active_until"
)

func NewSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByCreatedAt, SortByActiveFrom, SortByActiveUntil:
		return SortBy(s), nil
	default:
		return "", ErrInvalidSort
	}
}

// Settings carries the reference time zone that decides which calendar day "today" is.
type Settings struct {
	Location *time.Location
}

type BusinessListFilter struct {
	BusinessID uuid.UUID
	// upper-case alpha-2 codes; a promocode without a country target always matches
	Countries []string
	SortBy    SortBy
	Limit     int
	Offset    int
	AsOf      time.Time
}

type FeedFilter struct {
	UserID   uuid.UUID
	Age      int
	Country  string
	Category string
	Active   *bool
	Limit    int
	Offset   int
	AsOf     time.Time
}

type PromocodeReadStore interface {
	ListByBusiness(ctx context.Context, f BusinessListFilter) ([]*PromocodeView, int, error)
	FindByID(ctx context.Context, id uuid.UUID, asOf time.Time) (*PromocodeView, error)
	Stat(ctx context.Context, id uuid.UUID) (*PromocodeStatView, error)
	Feed(ctx context.Context, f FeedFilter) ([]*UserPromocodeView, int, error)
	FindForUser(ctx context.Context, id, userID uuid.UUID, asOf time.Time) (*UserPromocodeView, error)
	History(ctx context.Context, userID uuid.UUID, asOf time.Time, limit, offset int) ([]*UserPromocodeView, int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PromocodeQueries interface {
	ListForBusiness(ctx context.Context, businessID uuid.UUID, countries []string, sortBy string, page Page) ([]*PromocodeView, int, error)
	GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*PromocodeView, error)
	StatForBusiness(ctx context.Context, id, businessID uuid.UUID) (*PromocodeStatView, error)
	Feed(ctx context.Context, userID uuid.UUID, category string, active *bool, page Page) ([]*UserPromocodeView, int, error)
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*UserPromocodeView, error)
	History(ctx context.Context, userID uuid.UUID, page Page) ([]*UserPromocodeView, int, error)
}

type promocodeQueriesImpl struct {
	store    PromocodeReadStore
	users    UserReadStore
	clock    clock.Clock
	location *time.Location
}

func NewPromocodeQueries(store PromocodeReadStore, users UserReadStore, clk clock.Clock, settings Settings) PromocodeQueries {
	return &promocodeQueriesImpl{store: store, users: users, clock: clk, location: settings.Location}
}

func (q *promocodeQueriesImpl) asOf() time.Time {
	return promocode.AsOfDate(q.clock.Now(), q.location)
}

func (q *promocodeQueriesImpl) ListForBusiness(ctx context.Context, businessID uuid.UUID, countries []string, sortBy string, page Page) ([]*PromocodeView, int, error) {
	limit, offset, err := page.Normalize()
	if err != nil {
		return nil, 0, err
	}
	sort, err := NewSortBy(sortBy)
	if err != nil {
		return nil, 0, err
	}
	normalized := make([]string, 0, len(countries))
	for _, c := range countries {
		n, cerr := promocode.NormalizeCountry(c)
		if cerr != nil {
			return nil, 0, cerr
		}
		normalized = append(normalized, n)
	}

	return q.store.ListByBusiness(ctx, BusinessListFilter{
		BusinessID: businessID,
		Countries:  normalized,
		SortBy:     sort,
		Limit:      limit,
		Offset:     offset,
		AsOf:       q.asOf(),
	})
}

func (q *promocodeQueriesImpl) GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*PromocodeView, error) {
	view, err := q.store.FindByID(ctx, id, q.asOf())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromocodeNotFound
		}
		return nil, err
	}
	if view.BusinessID != businessID {
		return nil, ErrPromocodeAccess
	}
	return view, nil
}

func (q *promocodeQueriesImpl) StatForBusiness(ctx context.Context, id, businessID uuid.UUID) (*PromocodeStatView, error) {
	if _, err := q.GetForBusiness(ctx, id, businessID); err != nil {
		return nil, err
	}
	return q.store.Stat(ctx, id)
}

func (q *promocodeQueriesImpl) Feed(ctx context.Context, userID uuid.UUID, category string, active *bool, page Page) ([]*UserPromocodeView, int, error) {
	limit, offset, err := page.Normalize()
	if err != nil {
		return nil, 0, err
	}
	profile, err := q.users.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	return q.store.Feed(ctx, FeedFilter{
		UserID:   userID,
		Age:      profile.Age,
		Country:  profile.Country,
		Category: category,
		Active:   active,
		Limit:    limit,
		Offset:   offset,
		AsOf:     q.asOf(),
	})
}

func (q *promocodeQueriesImpl) GetForUser(ctx context.Context, id, userID uuid.UUID) (*UserPromocodeView, error) {
	view, err := q.store.FindForUser(ctx, id, userID, q.asOf())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromocodeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *promocodeQueriesImpl) History(ctx context.Context, userID uuid.UUID, page Page) ([]*UserPromocodeView, int, error) {
	limit, offset, err := page.Normalize()
	if err != nil {
		return nil, 0, err
	}
	return q.store.History(ctx, userID, q.asOf(), limit, offset)
}
