package catalog

import (
	"strings"

	"savesphere/internal/domain/deal"
)

// TypeFilterAll passes every deal type.
const TypeFilterAll = "all"

// Filters are the conjunctive gates of the catalog query. Zero values
// match everything.
type Filters struct {
	Search   string
	DealType string  // "all" or empty passes; otherwise exact match
	Category *string // nil passes; otherwise exact match
}

// Matches reports whether a deal passes every filter gate. The search
// gate is a case-insensitive substring test over title, store,
// description, promo code and platform.
func Matches(d *deal.Deal, f Filters) bool {
	if f.DealType != "" && f.DealType != TypeFilterAll && d.DealType().String() != f.DealType {
		return false
	}
	if f.Category != nil && d.Category() != *f.Category {
		return false
	}
	return matchesSearch(d, f.Search)
}

func matchesSearch(d *deal.Deal, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := []string{
		d.Title(),
		d.Store(),
		d.Description(),
		d.PromoCode(),
		d.Platform(),
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
