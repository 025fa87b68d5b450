//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ctx = context.Background()
	// 23:00 UTC on the 15th is the 16th in Moscow
	testNow = time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)
	moscow  = time.FixedZone("MSK", 3*60*60)
	msToday = time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
)

func newPromocodeQueries() (*mockPromocodeStore, *mockUserStore, queries.PromocodeQueries) {
	store := &mockPromocodeStore{}
	users := &mockUserStore{}
	q := queries.NewPromocodeQueries(store, users, clock.NewMockClock(testNow), queries.Settings{Location: moscow})
	return store, users, q
}

func intPtr(v int) *int { return &v }

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		name       string
		page       queries.Page
		wantLimit  int
		wantOffset int
		wantErr    error
	}{
		{name: "defaults", page: queries.Page{}, wantLimit: queries.DefaultListLimit},
		{name: "explicit", page: queries.Page{Limit: intPtr(3), Offset: 6}, wantLimit: 3, wantOffset: 6},
		{name: "zero limit", page: queries.Page{Limit: intPtr(0)}, wantLimit: 0},
		{name: "clamped", page: queries.Page{Limit: intPtr(1000)}, wantLimit: queries.MaxListLimit},
		{name: "negative limit", page: queries.Page{Limit: intPtr(-1)}, wantErr: queries.ErrInvalidPage},
		{name: "negative offset", page: queries.Page{Offset: -1}, wantErr: queries.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := tt.page.Normalize()
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestListForBusiness(t *testing.T) {
	businessID := uuid.New()

	t.Run("builds the filter", func(t *testing.T) {
		store, _, q := newPromocodeQueries()
		views := []*queries.PromocodeView{{ID: uuid.New()}}
		store.On("ListByBusiness", ctx, queries.BusinessListFilter{
			BusinessID: businessID,
			Countries:  []string{"RU", "KZ"},
			SortBy:     queries.SortByActiveUntil,
			Limit:      5,
			Offset:     10,
			AsOf:       msToday,
		}).Return(views, 42, nil)

		got, total, err := q.ListForBusiness(ctx, businessID, []string{"ru", " kz "}, "active_until", queries.Page{Limit: intPtr(5), Offset: 10})

		require.NoError(t, err)
		assert.Equal(t, views, got)
		assert.Equal(t, 42, total)
		store.AssertExpectations(t)
	})

	tests := []struct {
		name      string
		countries []string
		sortBy    string
		page      queries.Page
		wantErr   error
	}{
		{name: "unknown sort", sortBy: "likes", wantErr: queries.ErrInvalidSort},
		{name: "bad country", countries: []string{"russia"}, wantErr: promocode.ErrInvalidCountry},
		{name: "bad page", page: queries.Page{Offset: -5}, wantErr: queries.ErrInvalidPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, q := newPromocodeQueries()

			_, _, err := q.ListForBusiness(ctx, businessID, tt.countries, tt.sortBy, tt.page)

			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			store.AssertNotCalled(t, "ListByBusiness", mock.Anything, mock.Anything)
		})
	}
}

func TestGetForBusiness(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	tests := []struct {
		name     string
		view     *queries.PromocodeView
		err      error
		caller   uuid.UUID
		wantErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "owner", view: &queries.PromocodeView{ID: id, BusinessID: owner}, caller: owner},
		{name: "another business", view: &queries.PromocodeView{ID: id, BusinessID: owner}, caller: uuid.New(), wantErr: queries.ErrPromocodeAccess},
		{name: "missing", err: infra.RepositoryError{Kind: infra.KindNotFound}, caller: owner, wantErr: queries.ErrPromocodeNotFound},
		{name: "store failure", err: infra.RepositoryError{Kind: infra.KindDBFailure}, caller: owner, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, q := newPromocodeQueries()
			store.On("FindByID", ctx, id, msToday).Return(tt.view, tt.err)

			got, err := q.GetForBusiness(ctx, id, tt.caller)

			switch {
			case tt.wantErr != nil:
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			case tt.wantKind != "":
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}

func TestStatForBusiness(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	t.Run("owner", func(t *testing.T) {
		store, _, q := newPromocodeQueries()
		stat := &queries.PromocodeStatView{
			ActivationsCount: 3,
			Countries:        []queries.CountryStat{{Country: "kz", ActivationsCount: 1}, {Country: "ru", ActivationsCount: 2}},
		}
		store.On("FindByID", ctx, id, msToday).Return(&queries.PromocodeView{ID: id, BusinessID: owner}, nil)
		store.On("Stat", ctx, id).Return(stat, nil)

		got, err := q.StatForBusiness(ctx, id, owner)

		require.NoError(t, err)
		assert.Equal(t, stat, got)
	})

	t.Run("another business", func(t *testing.T) {
		store, _, q := newPromocodeQueries()
		store.On("FindByID", ctx, id, msToday).Return(&queries.PromocodeView{ID: id, BusinessID: owner}, nil)

		_, err := q.StatForBusiness(ctx, id, uuid.New())

		assert.True(t, errs.Is(err, queries.ErrPromocodeAccess))
		store.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything)
	})
}

func TestFeed(t *testing.T) {
	userID := uuid.New()
	active := true

	t.Run("filters by the caller's profile", func(t *testing.T) {
		store, users, q := newPromocodeQueries()
		users.On("FindProfile", ctx, userID).Return(&queries.UserProfileView{ID: userID, Age: 23, Country: "ru"}, nil)
		views := []*queries.UserPromocodeView{{ID: uuid.New()}}
		store.On("Feed", ctx, queries.FeedFilter{
			UserID:   userID,
			Age:      23,
			Country:  "ru",
			Category: "food",
			Active:   &active,
			Limit:    queries.DefaultListLimit,
			AsOf:     msToday,
		}).Return(views, 1, nil)

		got, total, err := q.Feed(ctx, userID, "food", &active, queries.Page{})

		require.NoError(t, err)
		assert.Equal(t, views, got)
		assert.Equal(t, 1, total)
	})

	t.Run("unknown user", func(t *testing.T) {
		store, users, q := newPromocodeQueries()
		users.On("FindProfile", ctx, userID).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, _, err := q.Feed(ctx, userID, "", nil, queries.Page{})

		assert.True(t, errs.Is(err, queries.ErrUserNotFound))
		store.AssertNotCalled(t, "Feed", mock.Anything, mock.Anything)
	})
}

func TestGetForUser(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	store, _, q := newPromocodeQueries()
	view := &queries.UserPromocodeView{ID: id, IsActivatedByUser: true}
	store.On("FindForUser", ctx, id, userID, msToday).Return(view, nil)
	missing := uuid.New()
	store.On("FindForUser", ctx, missing, userID, msToday).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	got, err := q.GetForUser(ctx, id, userID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	_, err = q.GetForUser(ctx, missing, userID)
	assert.True(t, errs.Is(err, queries.ErrPromocodeNotFound))
}

func TestHistory(t *testing.T) {
	userID := uuid.New()
	store, _, q := newPromocodeQueries()
	views := []*queries.UserPromocodeView{{ID: uuid.New()}, {ID: uuid.New()}}
	store.On("History", ctx, userID, msToday, 2, 4).Return(views, 7, nil)

	got, total, err := q.History(ctx, userID, queries.Page{Limit: intPtr(2), Offset: 4})

	require.NoError(t, err)
	assert.Equal(t, views, got)
	assert.Equal(t, 7, total)
}
