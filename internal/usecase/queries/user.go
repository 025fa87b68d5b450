package queries

import (
	"context"

	"github.com/google/uuid"

	"promocode-service/internal/infra"
	"promocode-service/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
}

type UserReadStore interface {
	FindProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	profile, err := q.readStore.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}
