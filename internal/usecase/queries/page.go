package queries

import "promocode-service/internal/pkg/errs"

const (
	DefaultListLimit = 10
	MaxListLimit     = 200
)

var ErrInvalidPage = errs.New("limit and offset must be non-negative")

// Page is offset pagination. A nil Limit means DefaultListLimit.
type Page struct {
	Limit  *int
	Offset int
}

func (p Page) Normalize() (limit, offset int, err error) {
	limit = DefaultListLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	if limit < 0 || p.Offset < 0 {
		return 0, 0, ErrInvalidPage
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return limit, p.Offset, nil
}
