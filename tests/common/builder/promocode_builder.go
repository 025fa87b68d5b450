//go:build unit || e2e

package builder

import (
	"time"

	"promocode-service/internal/domain/promocode"
	reqdto "promocode-service/internal/handler/dto/request"
	"promocode-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type PromocodeBuilder struct {
	BusinessID  uuid.UUID
	Description string
	ImageURL    *string
	AgeFrom     *int
	AgeUntil    *int
	Country     *string
	Categories  []string
	Mode        string
	MaxCount    int
	CommonCode  *string
	UniqueCodes []string
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	CreatedAt   time.Time
}

func NewPromocodeBuilder() *PromocodeBuilder {
	common := "SAVE10"
	return &PromocodeBuilder{
		BusinessID:  uuid.New(),
		Description: "Ten percent off everything",
		Mode:        "COMMON",
		MaxCount:    10,
		CommonCode:  &common,
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PromocodeBuilder) With(mutate func(*PromocodeBuilder)) *PromocodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PromocodeBuilder) BuildTarget() (promocode.Target, error) {
	return promocode.NewTarget(b.AgeFrom, b.AgeUntil, b.Country, b.Categories)
}

func (b *PromocodeBuilder) BuildDomain() (*promocode.Promocode, error) {
	target, err := b.BuildTarget()
	if err != nil {
		return nil, err
	}
	mode, err := promocode.NewMode(b.Mode)
	if err != nil {
		return nil, err
	}
	return promocode.NewPromocode(promocode.NewParams{
		BusinessID:  b.BusinessID,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Target:      target,
		Mode:        mode,
		MaxCount:    b.MaxCount,
		CommonCode:  b.CommonCode,
		UniqueCodes: b.UniqueCodes,
		ActiveFrom:  b.ActiveFrom,
		ActiveUntil: b.ActiveUntil,
		CreatedAt:   b.CreatedAt,
	})
}

// BuildStored returns a promocode as loaded from the store, with the given
// activation count (COMMON) or issued codes (UNIQUE).
func (b *PromocodeBuilder) BuildStored(activationCount int, activated ...string) *promocode.Promocode {
	target, err := b.BuildTarget()
	if err != nil {
		panic(err)
	}
	return promocode.ReconstructPromocode(promocode.ReconstructParams{
		ID:              uuid.New(),
		BusinessID:      b.BusinessID,
		Description:     b.Description,
		ImageURL:        b.ImageURL,
		Target:          target,
		Mode:            promocode.Mode(b.Mode),
		MaxCount:        b.MaxCount,
		CommonCode:      b.CommonCode,
		UniqueCodes:     b.UniqueCodes,
		ActivatedCodes:  activated,
		ActiveFrom:      b.ActiveFrom,
		ActiveUntil:     b.ActiveUntil,
		ActivationCount: activationCount,
		CreatedAt:       b.CreatedAt,
	})
}

func (b *PromocodeBuilder) BuildCommand() commands.CreatePromocodeRequest {
	return commands.CreatePromocodeRequest{
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Target: commands.TargetInput{
			AgeFrom:    b.AgeFrom,
			AgeUntil:   b.AgeUntil,
			Country:    b.Country,
			Categories: b.Categories,
		},
		MaxCount:    b.MaxCount,
		ActiveFrom:  b.ActiveFrom,
		ActiveUntil: b.ActiveUntil,
		Mode:        b.Mode,
		PromoCommon: b.CommonCode,
		PromoUnique: b.UniqueCodes,
	}
}

func (b *PromocodeBuilder) BuildDTO() reqdto.CreatePromocodeRequest {
	maxCount := b.MaxCount
	dto := reqdto.CreatePromocodeRequest{
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Target: reqdto.TargetRequest{
			AgeFrom:    b.AgeFrom,
			AgeUntil:   b.AgeUntil,
			Country:    b.Country,
			Categories: b.Categories,
		},
		MaxCount:    &maxCount,
		Mode:        b.Mode,
		PromoCommon: b.CommonCode,
		PromoUnique: b.UniqueCodes,
	}
	if b.ActiveFrom != nil {
		dto.ActiveFrom = &reqdto.Date{Time: *b.ActiveFrom}
	}
	if b.ActiveUntil != nil {
		dto.ActiveUntil = &reqdto.Date{Time: *b.ActiveUntil}
	}
	return dto
}

// Fluent builder methods
func (b *PromocodeBuilder) AsCommon(code string, maxCount int) *PromocodeBuilder {
	b.Mode = "COMMON"
	b.CommonCode = &code
	b.UniqueCodes = nil
	b.MaxCount = maxCount
	return b
}

func (b *PromocodeBuilder) AsUnique(codes ...string) *PromocodeBuilder {
	b.Mode = "UNIQUE"
	b.CommonCode = nil
	b.UniqueCodes = codes
	b.MaxCount = 1
	return b
}

func (b *PromocodeBuilder) WithAgeRange(from, until *int) *PromocodeBuilder {
	b.AgeFrom = from
	b.AgeUntil = until
	return b
}

func (b *PromocodeBuilder) WithCountry(country string) *PromocodeBuilder {
	b.Country = &country
	return b
}

func (b *PromocodeBuilder) WithCategories(categories ...string) *PromocodeBuilder {
	b.Categories = categories
	return b
}

func (b *PromocodeBuilder) WithWindow(from, until *time.Time) *PromocodeBuilder {
	b.ActiveFrom = from
	b.ActiveUntil = until
	return b
}

func (b *PromocodeBuilder) WithDescription(description string) *PromocodeBuilder {
	b.Description = description
	return b
}

func (b *PromocodeBuilder) WithBusinessID(id uuid.UUID) *PromocodeBuilder {
	b.BusinessID = id
	return b
}
