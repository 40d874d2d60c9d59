//go:build unit || e2e

package builder

import (
	"time"

	domdeal "savesphere/internal/domain/deal"
	reqdto "savesphere/internal/handler/dto/request"
	"savesphere/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealBuilder struct {
	ID             string
	Title          string
	Description    string
	Discount       string
	Store          string
	Category       string
	DealType       domdeal.Type
	PromoCode      string
	AffiliateURL   string
	Platform       string
	Address        string
	Lat            float64
	Lng            float64
	ExpiresAt      time.Time
	CreatedAt      time.Time
	PostedBy       domdeal.PostedBy
	Verified       int
	Flagged        int
	Image          string
	UserCategories []domdeal.UserCategory
}

func NewDealBuilder() *DealBuilder {
	now := time.Now()
	return &DealBuilder{
		ID:          uuid.New().String(),
		Title:       "50% Off All Produce",
		Description: "Half price on fresh produce until end of day",
		Discount:    "50%",
		Store:       "Whole Foods Market",
		Category:    "Groceries",
		DealType:    domdeal.TypeInStore,
		Address:     "123 Main St, San Francisco, CA",
		Lat:         37.7749,
		Lng:         -122.4194,
		ExpiresAt:   now.Add(5 * time.Hour),
		CreatedAt:   now,
		PostedBy: domdeal.PostedBy{
			UserID: "u2",
			Name:   "Jamie Smith",
			Avatar: "https://i.pravatar.cc/150?img=5",
		},
		Verified:       12,
		UserCategories: []domdeal.UserCategory{domdeal.CategoryFamily},
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) draft() domdeal.Draft {
	return domdeal.Draft{
		Title:        b.Title,
		Description:  b.Description,
		Discount:     b.Discount,
		Store:        b.Store,
		Category:     b.Category,
		DealType:     b.DealType,
		PromoCode:    b.PromoCode,
		AffiliateURL: b.AffiliateURL,
		Platform:     b.Platform,
		Location: domdeal.Location{
			Address:     b.Address,
			Coordinates: domdeal.Coordinates{Lat: b.Lat, Lng: b.Lng},
		},
		ExpiresAt:      b.ExpiresAt,
		Image:          b.Image,
		UserCategories: b.UserCategories,
	}
}

// Build methods
func (b *DealBuilder) BuildDomain() (*domdeal.Deal, error) {
	return domdeal.New(b.ID, b.draft(), b.PostedBy, b.CreatedAt)
}

func (b *DealBuilder) BuildReconstructed() *domdeal.Deal {
	return domdeal.Reconstruct(b.ID, b.draft(), b.PostedBy, "", b.Verified, b.Flagged, b.CreatedAt)
}

func (b *DealBuilder) BuildPostRequestDTO() reqdto.PostDealRequest {
	audiences := make([]string, 0, len(b.UserCategories))
	for _, c := range b.UserCategories {
		audiences = append(audiences, string(c))
	}
	return reqdto.PostDealRequest{
		Title:          b.Title,
		Description:    b.Description,
		Discount:       b.Discount,
		Store:          b.Store,
		Category:       b.Category,
		DealType:       b.DealType.String(),
		PromoCode:      b.PromoCode,
		AffiliateURL:   b.AffiliateURL,
		Platform:       b.Platform,
		Address:        b.Address,
		Lat:            b.Lat,
		Lng:            b.Lng,
		ExpiresAt:      b.ExpiresAt,
		Image:          b.Image,
		UserCategories: audiences,
	}
}

func (b *DealBuilder) BuildView() *queries.DealView {
	audiences := make([]string, 0, len(b.UserCategories))
	for _, c := range b.UserCategories {
		audiences = append(audiences, string(c))
	}
	return &queries.DealView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Discount:    b.Discount,
		Store:       b.Store,
		Category:    b.Category,
		DealType:    b.DealType.String(),
		PromoCode:   b.PromoCode,
		Platform:    b.Platform,
		Location: queries.LocationView{
			Address: b.Address,
			Lat:     b.Lat,
			Lng:     b.Lng,
		},
		ExpiresAt:      b.ExpiresAt,
		CreatedAt:      b.CreatedAt,
		PostedBy:       queries.PostedByView(b.PostedBy),
		Verified:       b.Verified,
		Flagged:        b.Flagged,
		UserCategories: audiences,
	}
}

// Fluent builder methods
func (b *DealBuilder) WithID(id string) *DealBuilder {
	b.ID = id
	return b
}

func (b *DealBuilder) WithTitle(title string) *DealBuilder {
	b.Title = title
	return b
}

func (b *DealBuilder) WithStore(store string) *DealBuilder {
	b.Store = store
	return b
}

func (b *DealBuilder) WithDiscount(discount string) *DealBuilder {
	b.Discount = discount
	return b
}

func (b *DealBuilder) WithCategory(category string) *DealBuilder {
	b.Category = category
	return b
}

func (b *DealBuilder) WithDealType(t domdeal.Type) *DealBuilder {
	b.DealType = t
	return b
}

func (b *DealBuilder) WithCoordinates(lat, lng float64) *DealBuilder {
	b.Lat = lat
	b.Lng = lng
	return b
}

func (b *DealBuilder) WithExpiresAt(t time.Time) *DealBuilder {
	b.ExpiresAt = t
	return b
}

func (b *DealBuilder) WithCreatedAt(t time.Time) *DealBuilder {
	b.CreatedAt = t
	return b
}

func (b *DealBuilder) WithVerified(n int) *DealBuilder {
	b.Verified = n
	return b
}

func (b *DealBuilder) WithUserCategories(cs ...domdeal.UserCategory) *DealBuilder {
	b.UserCategories = cs
	return b
}

func (b *DealBuilder) AsOnline() *DealBuilder {
	b.DealType = domdeal.TypeOnline
	b.PromoCode = "TECHSAVE500"
	b.Platform = "Amazon"
	b.Address = "Online"
	b.Lat = 0
	b.Lng = 0
	return b
}

func (b *DealBuilder) AsAffiliate() *DealBuilder {
	b.DealType = domdeal.TypeAffiliate
	b.AffiliateURL = "https://www.myntra.com/?utm=savesphere"
	b.Platform = "Myntra"
	b.Address = "Online"
	b.Lat = 0
	b.Lng = 0
	return b
}
