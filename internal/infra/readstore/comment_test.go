//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"promocode-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"id", "promocode_id", "text", "created_at", "name", "surname", "avatar_url"}

func TestListByPromocode(t *testing.T) {
	mock := setupMock(t)
	promoID := uuid.New()
	first, second := uuid.New(), uuid.New()
	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM promocode_comments").
		WithArgs(promoID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT .+ FROM promocode_comments c").
		WithArgs(promoID, 2, 1).
		WillReturnRows(pgxmock.NewRows(commentColumns).
			AddRow(first, promoID, "newest comment here", at, "Ivan", "Petrov", pgtype.Text{}).
			AddRow(second, promoID, "older comment here", at.Add(-time.Hour), "Maria", "Ivanova", pgtype.Text{String: "https://a.example/x.png", Valid: true}))

	views, total, err := NewCommentReadStore(mock, newTestLogger()).ListByPromocode(context.Background(), promoID, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].ID)
	assert.Equal(t, promoID, views[0].PromocodeID)
	assert.Nil(t, views[0].Author.AvatarURL)
	assert.Equal(t, "https://a.example/x.png", *views[1].Author.AvatarURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCommentByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := setupMock(t)
		id, promoID, authorID := uuid.New(), uuid.New(), uuid.New()
		at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT id, promocode_id, author_id, text, created_at FROM promocode_comments").
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id", "promocode_id", "author_id", "text", "created_at"}).
				AddRow(id, promoID, authorID, "some comment text", pgtype.Timestamptz{Time: at, Valid: true}))

		c, err := NewCommentReadStore(mock, newTestLogger()).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, c.IsAuthoredBy(authorID))
		assert.Equal(t, promoID, c.PromocodeID())
		assert.True(t, at.Equal(c.CreatedAt()))
	})

	t.Run("not found", func(t *testing.T) {
		mock := setupMock(t)
		id := uuid.New()
		mock.ExpectQuery("SELECT .+ FROM promocode_comments c").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		v, err := NewCommentReadStore(mock, newTestLogger()).FindViewByID(context.Background(), id)
		assert.Nil(t, v)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
