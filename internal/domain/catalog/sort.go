package catalog

import (
	"savesphere/internal/domain/deal"
	"savesphere/internal/pkg/geo"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortNewest   SortKey = "newest"   // descending createdAt
	SortExpiring SortKey = "expiring" // ascending expiresAt
	SortPopular  SortKey = "popular"  // descending verified count
	SortDistance SortKey = "distance" // ascending haversine distance from origin
)

func (k SortKey) String() string {
	return string(k)
}

func (k SortKey) IsValid() bool {
	switch k {
	case SortNewest, SortExpiring, SortPopular, SortDistance:
		return true
	default:
		return false
	}
}

// Compare orders two deals under key. Ties return 0 so a stable sort
// preserves original relative order. Distance sorting needs an origin;
// without one every pair ties, keeping the input order.
func Compare(a, b *deal.Deal, key SortKey, origin *deal.Coordinates) int {
	switch key {
	case SortNewest:
		return b.CreatedAt().Compare(a.CreatedAt())
	case SortExpiring:
		return a.ExpiresAt().Compare(b.ExpiresAt())
	case SortPopular:
		return cmpInt(b.Verified(), a.Verified())
	case SortDistance:
		if origin == nil {
			return 0
		}
		return cmpFloat(distanceFrom(a, *origin), distanceFrom(b, *origin))
	default:
		return 0
	}
}

func distanceFrom(d *deal.Deal, origin deal.Coordinates) float64 {
	c := d.Location().Coordinates
	return geo.DistanceKm(origin.Lat, origin.Lng, c.Lat, c.Lng)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
