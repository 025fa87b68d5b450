package shared

import (
	"context"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAllocationConflict reports that another transaction issued a unique code
// first. The whole allocation must be retried against fresh state.
var ErrAllocationConflict = errs.New("promocode allocation conflict")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Promocodes() PromocodeRepository
	Activations() ActivationRepository
	Users() UserRepository
	Businesses() BusinessRepository
	Likes() LikeRepository
	Comments() CommentRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PromocodeByID(ctx context.Context, id uuid.UUID) (*promocode.Promocode, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	BusinessByEmail(ctx context.Context, email string) (*business.Business, error)
	CommentByID(ctx context.Context, id uuid.UUID) (*promocode.Comment, error)
	TokenVersion(ctx context.Context, role user.Role, id uuid.UUID) (int64, error)
}

type PromocodeRepository interface {
	// Create stores the target row and the promocode row; both must share the caller's tx.
	Create(ctx context.Context, tx db.DBTX, p *promocode.Promocode) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promocode.Promocode, error)
	// FindByIDForUpdate locks the promocode row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promocode.Promocode, error)
	Update(ctx context.Context, tx db.DBTX, p *promocode.Promocode) error
	// AppendActivatedCode appends code only if exactly expected codes were issued
	// before; otherwise it returns ErrAllocationConflict.
	AppendActivatedCode(ctx context.Context, tx db.DBTX, id uuid.UUID, expected int, code string) error
}

type ActivationRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *promocode.Activation) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	// BumpTokenVersion increments and returns the new version.
	BumpTokenVersion(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type BusinessRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *business.Business) error
	BumpTokenVersion(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type LikeRepository interface {
	Add(ctx context.Context, tx db.DBTX, promocodeID, userID uuid.UUID) error
	Remove(ctx context.Context, tx db.DBTX, promocodeID, userID uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *promocode.Comment) error
	Update(ctx context.Context, tx db.DBTX, c *promocode.Comment) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
