package promocode

import (
	"strings"
	"unicode/utf8"
)

// Target restricts which users may redeem a promocode. Unset fields match everyone.
type Target struct {
	ageFrom    *int
	ageUntil   *int
	country    string
	categories []string
}

// Profile is the part of a user that targeting looks at.
type Profile struct {
	Age     int
	Country string
}

func NewTarget(ageFrom, ageUntil *int, country *string, categories []string) (Target, error) {
	if ageFrom != nil && (*ageFrom < MinAge || *ageFrom > MaxAge) {
		return Target{}, ErrInvalidAge
	}
	if ageUntil != nil && (*ageUntil < MinAge || *ageUntil > MaxAge) {
		return Target{}, ErrInvalidAge
	}
	if ageFrom != nil && ageUntil != nil && *ageFrom > *ageUntil {
		return Target{}, ErrInvalidAgeRange
	}

	var normalized string
	if country != nil && *country != "" {
		c, err := NormalizeCountry(*country)
		if err != nil {
			return Target{}, err
		}
		normalized = c
	}

	if len(categories) > MaxCategories {
		return Target{}, ErrInvalidCategories
	}
	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		n := utf8.RuneCountInString(c)
		if n < MinCategoryLen || n > MaxCategoryLen {
			return Target{}, ErrInvalidCategories
		}
		cats = append(cats, c)
	}

	return Target{
		ageFrom:    copyInt(ageFrom),
		ageUntil:   copyInt(ageUntil),
		country:    normalized,
		categories: cats,
	}, nil
}

// NormalizeCountry upper-cases an ISO 3166 alpha-2 code and rejects anything else.
func NormalizeCountry(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return "", ErrInvalidCountry
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCountry
		}
	}
	return s, nil
}

// Matches reports whether the profile satisfies the age and country rules.
// Categories are a listing filter only and do not take part here.
func (t Target) Matches(p Profile) bool {
	if t.ageFrom != nil && p.Age < *t.ageFrom {
		return false
	}
	if t.ageUntil != nil && p.Age > *t.ageUntil {
		return false
	}
	if t.country != "" && !strings.EqualFold(t.country, p.Country) {
		return false
	}
	return true
}

// MatchesCategory applies the feed's category filter. An empty filter or an
// untargeted promocode always matches.
func (t Target) MatchesCategory(category string) bool {
	if category == "" || len(t.categories) == 0 {
		return true
	}
	for _, c := range t.categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func (t Target) AgeFrom() *int  { return copyInt(t.ageFrom) }
func (t Target) AgeUntil() *int { return copyInt(t.ageUntil) }

func (t Target) Country() *string {
	if t.country == "" {
		return nil
	}
	c := t.country
	return &c
}

func (t Target) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
