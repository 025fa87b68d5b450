//go:build unit

package queries_test

import (
	"context"
	"time"

	"promocode-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockPromocodeStore struct {
	mock.Mock
}

func (m *mockPromocodeStore) ListByBusiness(ctx context.Context, f queries.BusinessListFilter) ([]*queries.PromocodeView, int, error) {
	args := m.Called(ctx, f)
	views, _ := args.Get(0).([]*queries.PromocodeView)
	return views, args.Int(1), args.Error(2)
}

func (m *mockPromocodeStore) FindByID(ctx context.Context, id uuid.UUID, asOf time.Time) (*queries.PromocodeView, error) {
	args := m.Called(ctx, id, asOf)
	view, _ := args.Get(0).(*queries.PromocodeView)
	return view, args.Error(1)
}

func (m *mockPromocodeStore) Stat(ctx context.Context, id uuid.UUID) (*queries.PromocodeStatView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.PromocodeStatView)
	return view, args.Error(1)
}

func (m *mockPromocodeStore) Feed(ctx context.Context, f queries.FeedFilter) ([]*queries.UserPromocodeView, int, error) {
	args := m.Called(ctx, f)
	views, _ := args.Get(0).([]*queries.UserPromocodeView)
	return views, args.Int(1), args.Error(2)
}

func (m *mockPromocodeStore) FindForUser(ctx context.Context, id, userID uuid.UUID, asOf time.Time) (*queries.UserPromocodeView, error) {
	args := m.Called(ctx, id, userID, asOf)
	view, _ := args.Get(0).(*queries.UserPromocodeView)
	return view, args.Error(1)
}

func (m *mockPromocodeStore) History(ctx context.Context, userID uuid.UUID, asOf time.Time, limit, offset int) ([]*queries.UserPromocodeView, int, error) {
	args := m.Called(ctx, userID, asOf, limit, offset)
	views, _ := args.Get(0).([]*queries.UserPromocodeView)
	return views, args.Int(1), args.Error(2)
}

func (m *mockPromocodeStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.UserProfileView)
	return view, args.Error(1)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) ListByPromocode(ctx context.Context, promocodeID uuid.UUID, limit, offset int) ([]*queries.CommentView, int, error) {
	args := m.Called(ctx, promocodeID, limit, offset)
	views, _ := args.Get(0).([]*queries.CommentView)
	return views, args.Int(1), args.Error(2)
}

func (m *mockCommentStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.CommentView)
	return view, args.Error(1)
}
