//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"promocode-service/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain-text password behind every fixture account.
const DefaultPassword = "SuperStrong1!"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

type UserFixture struct {
	Name    string
	Surname string
	Email   string
	Age     int
	Country string
}

func CreateTestUser(t *testing.T, db DBLike, f UserFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Ivan"
	}
	if f.Surname == "" {
		f.Surname = "Petrov"
	}
	if f.Country == "" {
		f.Country = "RU"
	}

	userID := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, name, surname, email, age, country, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		userID, f.Name, f.Surname, f.Email, f.Age, strings.ToUpper(f.Country), defaultPasswordHash(t),
	).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestBusiness(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO businesses (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		businessID, name, email, defaultPasswordHash(t),
	).Scan(&businessID)
	require.NoError(t, err)

	return businessID
}

type PromocodeFixture struct {
	Description string
	Mode        string
	MaxCount    int
	CommonCode  *string
	UniqueCodes []string
	Country     *string
	AgeFrom     *int
	AgeUntil    *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	CreatedAt   time.Time
}

// CreateTestPromocode inserts a promocode with its target row, bypassing the API.
func CreateTestPromocode(t *testing.T, db DBLike, businessID uuid.UUID, f PromocodeFixture) uuid.UUID {
	t.Helper()

	if f.Description == "" {
		f.Description = "Fixture promocode description"
	}
	if f.Mode == "" {
		f.Mode = "COMMON"
	}
	if f.UniqueCodes == nil {
		f.UniqueCodes = []string{}
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	ctx := context.Background()
	targetID := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO promocode_targets (id, age_from, age_until, country)
		VALUES ($1, $2, $3, $4)`,
		targetID, f.AgeFrom, f.AgeUntil, f.Country,
	)
	require.NoError(t, err)

	promoID := uuid.New()
	_, err = db.Exec(ctx, `
		INSERT INTO promocodes (id, business_id, target_id, description, mode, max_count,
		                        promo_common, promo_unique, active_from, active_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		promoID, businessID, targetID, f.Description, f.Mode, f.MaxCount,
		f.CommonCode, f.UniqueCodes, f.ActiveFrom, f.ActiveUntil, f.CreatedAt,
	)
	require.NoError(t, err)

	return promoID
}

func CountActivations(t *testing.T, db DBLike, promoID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM promocode_activations WHERE promocode_id = $1", promoID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
