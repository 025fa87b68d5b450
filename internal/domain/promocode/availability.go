package promocode

import "time"

// AsOfDate converts an instant into the calendar date observed in loc,
// represented as midnight UTC so that it compares cleanly with stored dates.
func AsOfDate(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsActive is true when the calendar date of asOf falls inside the active
// window and capacity remains.
func (p *Promocode) IsActive(asOf time.Time) bool {
	return p.withinWindow(asOf) && p.hasCapacity()
}

func (p *Promocode) State(asOf time.Time) State {
	day := *dateOnly(&asOf)
	switch {
	case p.activeFrom != nil && day.Before(*p.activeFrom):
		return StateUpcoming
	case p.activeUntil != nil && day.After(*p.activeUntil):
		return StateExpired
	case !p.hasCapacity():
		return StateExhausted
	default:
		return StateActive
	}
}

func (p *Promocode) withinWindow(asOf time.Time) bool {
	day := *dateOnly(&asOf)
	if p.activeFrom != nil && p.activeFrom.After(day) {
		return false
	}
	if p.activeUntil != nil && p.activeUntil.Before(day) {
		return false
	}
	return true
}

func (p *Promocode) hasCapacity() bool {
	switch p.mode {
	case ModeCommon:
		return p.usedCount < p.maxCount
	case ModeUnique:
		return len(p.uniqueCodes) > len(p.activatedCodes)
	default:
		return false
	}
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}
