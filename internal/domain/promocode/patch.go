package promocode

import (
	"time"

	"promocode-service/internal/pkg/patch"
)

// Patch lists the fields a business may change after creation. Nil means
// "leave as is". Target replaces the whole targeting rule.
type Patch struct {
	Description *string
	ImageURL    *string
	Target      *Target
	MaxCount    *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
}

func (pt Patch) IsEmpty() bool {
	return pt.Description == nil && pt.ImageURL == nil && pt.Target == nil &&
		pt.MaxCount == nil && pt.ActiveFrom == nil && pt.ActiveUntil == nil
}

// ApplyPatch validates the patched promocode as a whole and only mutates the
// receiver when every rule still holds.
func (p *Promocode) ApplyPatch(pt Patch) error {
	candidate := *p
	candidate.description = patch.Coalesce(pt.Description, p.description)
	candidate.target = patch.Coalesce(pt.Target, p.target)
	candidate.maxCount = patch.Coalesce(pt.MaxCount, p.maxCount)
	if pt.ImageURL != nil {
		candidate.imageURL = pt.ImageURL
	}
	if pt.ActiveFrom != nil {
		candidate.activeFrom = dateOnly(pt.ActiveFrom)
	}
	if pt.ActiveUntil != nil {
		candidate.activeUntil = dateOnly(pt.ActiveUntil)
	}

	if err := candidate.validate(); err != nil {
		return err
	}
	*p = candidate
	return nil
}
