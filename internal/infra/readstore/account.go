package readstore

import (
	"context"
	"log/slog"
	"time"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/pgconv"
	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userColumnsSQL = `id, name, surname, email, avatar_url, age, country, password_hash, token_version, created_at`

	findUserByIDSQL    = `SELECT ` + userColumnsSQL + ` FROM users WHERE id = $1`
	findUserByEmailSQL = `SELECT ` + userColumnsSQL + ` FROM users WHERE email = $1`

	findBusinessByEmailSQL = `
SELECT id, name, email, password_hash, token_version, created_at FROM businesses WHERE email = $1`

	userTokenVersionSQL     = `SELECT token_version FROM users WHERE id = $1`
	businessTokenVersionSQL = `SELECT token_version FROM businesses WHERE id = $1`
)

// AccountReadStore serves users and businesses to both the command and query sides.
type AccountReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAccountReadStore(dbtx db.DBTX, logger *slog.Logger) *AccountReadStore {
	return &AccountReadStore{db: dbtx, logger: logger}
}

func (r *AccountReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.UserProfileView{
		ID:        u.ID(),
		Name:      u.Name(),
		Surname:   u.Surname(),
		Email:     u.Email().Value(),
		AvatarURL: u.AvatarURL(),
		Age:       u.Age(),
		Country:   u.Country(),
	}, nil
}

func (r *AccountReadStore) FindUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, findUserByIDSQL, id))
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get user by id", err)
	}
	return u, nil
}

func (r *AccountReadStore) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, findUserByEmailSQL, email))
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get user by email", err)
	}
	return u, nil
}

func (r *AccountReadStore) FindBusinessByEmail(ctx context.Context, email string) (*business.Business, error) {
	var (
		id                   uuid.UUID
		name, mail, password string
		version              int64
		createdAt            time.Time
	)
	err := r.db.QueryRow(ctx, findBusinessByEmailSQL, email).Scan(&id, &name, &mail, &password, &version, &createdAt)
	if err != nil {
		return nil, infra.ClassifyRepoErr(r.logger, "failed to get business by email", err)
	}
	return business.ReconstructBusiness(id, name, mail, password, version, createdAt), nil
}

func (r *AccountReadStore) TokenVersion(ctx context.Context, role user.Role, id uuid.UUID) (int64, error) {
	query := userTokenVersionSQL
	if role == user.RoleBusiness {
		query = businessTokenVersionSQL
	}
	var version int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&version); err != nil {
		return 0, infra.ClassifyRepoErr(r.logger, "failed to get token version", err)
	}
	return version, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		p         user.ReconstructParams
		avatarURL pgtype.Text
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Surname, &p.Email, &avatarURL, &p.Age, &p.Country,
		&p.PasswordHash, &p.TokenVersion, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.AvatarURL = pgconv.StringPtrFromPgtype(avatarURL)
	return user.ReconstructUser(p), nil
}
