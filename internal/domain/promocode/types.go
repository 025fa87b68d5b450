package promocode

import "errors"

var (
	ErrInvalidMode          = errors.New("mode must be COMMON or UNIQUE")
	ErrInvalidDescription   = errors.New("description must be 10..300 characters")
	ErrInvalidImageURL      = errors.New("image_url must be a non-blank url up to 350 characters")
	ErrInvalidMaxCount      = errors.New("max_count must be between 0 and 100000000")
	ErrInvalidCommonCode    = errors.New("promo_common must be 5..30 characters")
	ErrInvalidUniqueCodes   = errors.New("promo_unique must hold 1..5000 codes of 3..30 characters")
	ErrCommonWithUnique     = errors.New("promo_unique must be empty for COMMON mode")
	ErrUniqueWithCommon     = errors.New("promo_common must be empty for UNIQUE mode")
	ErrUniqueMaxCount       = errors.New("max_count must be 1 for UNIQUE mode")
	ErrMaxCountBelowUsage   = errors.New("max_count is lower than activations count")
	ErrInvalidActiveWindow  = errors.New("active_from can't be greater than active_until")
	ErrInvalidAge           = errors.New("age must be between 0 and 100")
	ErrInvalidAgeRange      = errors.New("age_from can't be greater than age_until")
	ErrInvalidCountry       = errors.New("country must be an ISO 3166 alpha-2 code")
	ErrInvalidCategories    = errors.New("categories must hold up to 20 names of 2..20 characters")
	ErrInvalidCommentText   = errors.New("comment text must be 10..1000 characters")
	ErrPromocodeUnavailable = errors.New("promocode is not available")
)

const (
	MinDescriptionLen = 10
	MaxDescriptionLen = 300
	MaxImageURLLen    = 350

	MaxMaxCount = 100_000_000

	MinCommonCodeLen = 5
	MaxCommonCodeLen = 30

	MinUniqueCodes   = 1
	MaxUniqueCodes   = 5000
	MinUniqueCodeLen = 3
	MaxUniqueCodeLen = 30

	MinAge = 0
	MaxAge = 100

	MaxCategories  = 20
	MinCategoryLen = 2
	MaxCategoryLen = 20

	MinCommentLen = 10
	MaxCommentLen = 1000
)

type Mode string

const (
	ModeCommon Mode = "COMMON"
	ModeUnique Mode = "UNIQUE"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeCommon, ModeUnique:
		return true
	default:
		return false
	}
}

func NewMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", ErrInvalidMode
	}
	return mode, nil
}

// State is derived from the active window and remaining capacity; it is never stored.
type State string

const (
	StateUpcoming  State = "UPCOMING"
	StateActive    State = "ACTIVE"
	StateExhausted State = "EXHAUSTED"
	StateExpired   State = "EXPIRED"
)
