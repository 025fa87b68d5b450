package promocode

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Promocode struct {
	id          uuid.UUID
	businessID  uuid.UUID
	description string
	imageURL    *string
	target      Target
	mode        Mode
	maxCount    int
	commonCode  string
	uniqueCodes []string
	// activatedCodes is always a prefix of uniqueCodes
	activatedCodes []string
	activeFrom     *time.Time
	activeUntil    *time.Time
	usedCount      int
	createdAt      time.Time
}

type NewParams struct {
	BusinessID  uuid.UUID
	Description string
	ImageURL    *string
	Target      Target
	Mode        Mode
	MaxCount    int
	CommonCode  *string
	UniqueCodes []string
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	CreatedAt   time.Time
}

func NewPromocode(p NewParams) (*Promocode, error) {
	promo := &Promocode{
		id:          uuid.New(),
		businessID:  p.BusinessID,
		description: p.Description,
		imageURL:    p.ImageURL,
		target:      p.Target,
		mode:        p.Mode,
		maxCount:    p.MaxCount,
		uniqueCodes: append([]string(nil), p.UniqueCodes...),
		activeFrom:  dateOnly(p.ActiveFrom),
		activeUntil: dateOnly(p.ActiveUntil),
		createdAt:   p.CreatedAt,
	}
	if p.CommonCode != nil {
		promo.commonCode = *p.CommonCode
	}
	if err := promo.validate(); err != nil {
		return nil, err
	}
	return promo, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Description     string
	ImageURL        *string
	Target          Target
	Mode            Mode
	MaxCount        int
	CommonCode      *string
	UniqueCodes     []string
	ActivatedCodes  []string
	ActiveFrom      *time.Time
	ActiveUntil     *time.Time
	ActivationCount int
	CreatedAt       time.Time
}

// ReconstructPromocode rebuilds a stored promocode without re-running creation rules.
func ReconstructPromocode(p ReconstructParams) *Promocode {
	promo := &Promocode{
		id:             p.ID,
		businessID:     p.BusinessID,
		description:    p.Description,
		imageURL:       p.ImageURL,
		target:         p.Target,
		mode:           p.Mode,
		maxCount:       p.MaxCount,
		uniqueCodes:    append([]string(nil), p.UniqueCodes...),
		activatedCodes: append([]string(nil), p.ActivatedCodes...),
		activeFrom:     dateOnly(p.ActiveFrom),
		activeUntil:    dateOnly(p.ActiveUntil),
		usedCount:      p.ActivationCount,
		createdAt:      p.CreatedAt,
	}
	if p.CommonCode != nil {
		promo.commonCode = *p.CommonCode
	}
	if promo.mode == ModeUnique {
		promo.usedCount = len(promo.activatedCodes)
	}
	return promo
}

func (p *Promocode) validate() error {
	if n := utf8.RuneCountInString(p.description); n < MinDescriptionLen || n > MaxDescriptionLen {
		return ErrInvalidDescription
	}
	if p.imageURL != nil {
		u := strings.TrimSpace(*p.imageURL)
		if u == "" || len(u) > MaxImageURLLen {
			return ErrInvalidImageURL
		}
	}
	if p.maxCount < 0 || p.maxCount > MaxMaxCount {
		return ErrInvalidMaxCount
	}
	if p.activeFrom != nil && p.activeUntil != nil && p.activeFrom.After(*p.activeUntil) {
		return ErrInvalidActiveWindow
	}

	switch p.mode {
	case ModeCommon:
		if len(p.uniqueCodes) > 0 {
			return ErrCommonWithUnique
		}
		if n := utf8.RuneCountInString(p.commonCode); n < MinCommonCodeLen || n > MaxCommonCodeLen {
			return ErrInvalidCommonCode
		}
		if p.maxCount < p.usedCount {
			return ErrMaxCountBelowUsage
		}
	case ModeUnique:
		if p.commonCode != "" {
			return ErrUniqueWithCommon
		}
		if len(p.uniqueCodes) < MinUniqueCodes || len(p.uniqueCodes) > MaxUniqueCodes {
			return ErrInvalidUniqueCodes
		}
		for _, c := range p.uniqueCodes {
			if n := utf8.RuneCountInString(c); n < MinUniqueCodeLen || n > MaxUniqueCodeLen {
				return ErrInvalidUniqueCodes
			}
		}
		if p.maxCount != 1 {
			return ErrUniqueMaxCount
		}
	default:
		return ErrInvalidMode
	}
	return nil
}

// Allocation is the code handed out by Allocate. Offset is the number of
// codes issued before this one, which the store uses as its compare-and-swap guard.
type Allocation struct {
	Code   string
	Offset int
}

// Allocate issues the next code. COMMON returns the shared code; UNIQUE returns
// the first code that has not been issued yet and appends it to the issued prefix.
func (p *Promocode) Allocate() (Allocation, error) {
	if !p.hasCapacity() {
		return Allocation{}, ErrPromocodeUnavailable
	}
	offset := p.usedCount
	switch p.mode {
	case ModeCommon:
		p.usedCount++
		return Allocation{Code: p.commonCode, Offset: offset}, nil
	case ModeUnique:
		code := p.uniqueCodes[len(p.activatedCodes)]
		p.activatedCodes = append(p.activatedCodes, code)
		p.usedCount = len(p.activatedCodes)
		return Allocation{Code: code, Offset: offset}, nil
	default:
		return Allocation{}, ErrInvalidMode
	}
}

func (p *Promocode) IsOwnedBy(businessID uuid.UUID) bool {
	return p.businessID == businessID
}

func (p *Promocode) ID() uuid.UUID         { return p.id }
func (p *Promocode) BusinessID() uuid.UUID { return p.businessID }
func (p *Promocode) Description() string   { return p.description }
func (p *Promocode) ImageURL() *string     { return p.imageURL }
func (p *Promocode) Target() Target        { return p.target }
func (p *Promocode) Mode() Mode            { return p.mode }
func (p *Promocode) MaxCount() int         { return p.maxCount }
func (p *Promocode) UsedCount() int        { return p.usedCount }
func (p *Promocode) ActiveFrom() *time.Time {
	return dateOnly(p.activeFrom)
}
func (p *Promocode) ActiveUntil() *time.Time {
	return dateOnly(p.activeUntil)
}
func (p *Promocode) CreatedAt() time.Time { return p.createdAt }

func (p *Promocode) CommonCode() *string {
	if p.mode != ModeCommon {
		return nil
	}
	c := p.commonCode
	return &c
}

func (p *Promocode) UniqueCodes() []string {
	return append([]string(nil), p.uniqueCodes...)
}

func (p *Promocode) ActivatedCodes() []string {
	return append([]string(nil), p.activatedCodes...)
}
