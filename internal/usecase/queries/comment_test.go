//go:build unit

package queries_test

import (
	"testing"

	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentList(t *testing.T) {
	promoID := uuid.New()

	t.Run("pages through comments", func(t *testing.T) {
		comments, promos := &mockCommentStore{}, &mockPromocodeStore{}
		views := []*queries.CommentView{{ID: uuid.New(), PromocodeID: promoID, Text: "Worked at checkout"}}
		promos.On("Exists", ctx, promoID).Return(true, nil)
		comments.On("ListByPromocode", ctx, promoID, 2, 1).Return(views, 3, nil)

		got, total, err := queries.NewCommentQueries(comments, promos).List(ctx, promoID, queries.Page{Limit: intPtr(2), Offset: 1})

		require.NoError(t, err)
		assert.Equal(t, views, got)
		assert.Equal(t, 3, total)
	})

	t.Run("unknown promocode", func(t *testing.T) {
		comments, promos := &mockCommentStore{}, &mockPromocodeStore{}
		promos.On("Exists", ctx, promoID).Return(false, nil)

		_, _, err := queries.NewCommentQueries(comments, promos).List(ctx, promoID, queries.Page{})

		assert.True(t, errs.Is(err, queries.ErrPromocodeNotFound))
		comments.AssertNotCalled(t, "ListByPromocode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad page", func(t *testing.T) {
		comments, promos := &mockCommentStore{}, &mockPromocodeStore{}

		_, _, err := queries.NewCommentQueries(comments, promos).List(ctx, promoID, queries.Page{Limit: intPtr(-1)})

		assert.True(t, errs.Is(err, queries.ErrInvalidPage))
		promos.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}

func TestCommentGet(t *testing.T) {
	promoID := uuid.New()
	id := uuid.New()

	tests := []struct {
		name    string
		view    *queries.CommentView
		err     error
		wantErr error
	}{
		{name: "found", view: &queries.CommentView{ID: id, PromocodeID: promoID}},
		{name: "posted under another promocode", view: &queries.CommentView{ID: id, PromocodeID: uuid.New()}, wantErr: queries.ErrCommentNotFound},
		{name: "missing", err: infra.RepositoryError{Kind: infra.KindNotFound}, wantErr: queries.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &mockCommentStore{}
			comments.On("FindViewByID", ctx, id).Return(tt.view, tt.err)

			got, err := queries.NewCommentQueries(comments, &mockPromocodeStore{}).Get(ctx, promoID, id)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}

func TestGetProfile(t *testing.T) {
	id := uuid.New()
	users := &mockUserStore{}
	profile := &queries.UserProfileView{ID: id, Name: "Ivan", Surname: "Petrov", Email: "ivan@example.com", Age: 23, Country: "ru"}
	users.On("FindProfile", ctx, id).Return(profile, nil)
	missing := uuid.New()
	users.On("FindProfile", ctx, missing).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	q := queries.NewUserQueries(users)

	got, err := q.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = q.GetProfile(ctx, missing)
	assert.True(t, errs.Is(err, queries.ErrUserNotFound))
}
