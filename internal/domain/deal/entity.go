package deal

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingTitle    = errors.New("deal title is required")
	ErrMissingStore    = errors.New("deal store is required")
	ErrMissingDiscount = errors.New("deal discount is required")
	ErrInvalidDealType = errors.New("invalid deal type")
	ErrExpiryInPast    = errors.New("deal expiry must be in the future")
)

// Deal is a single advertised offer. Counters and redemption bookkeeping
// are mutated only through the catalog store, never by callers holding a
// snapshot.
type Deal struct {
	id             string
	title          string
	description    string
	discount       string
	store          string
	category       string
	dealType       Type
	promoCode      string
	affiliateURL   string
	platform       string
	redemptionID   string
	location       Location
	expiresAt      time.Time
	createdAt      time.Time
	postedBy       PostedBy
	verified       int
	flagged        int
	image          string
	userCategories []UserCategory
}

// Draft carries the caller-supplied fields of a new deal.
type Draft struct {
	Title          string
	Description    string
	Discount       string
	Store          string
	Category       string
	DealType       Type
	PromoCode      string
	AffiliateURL   string
	Platform       string
	Location       Location
	ExpiresAt      time.Time
	Image          string
	UserCategories []UserCategory
}

func New(id string, d Draft, postedBy PostedBy, now time.Time) (*Deal, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrMissingTitle
	}
	if strings.TrimSpace(d.Store) == "" {
		return nil, ErrMissingStore
	}
	if strings.TrimSpace(d.Discount) == "" {
		return nil, ErrMissingDiscount
	}
	if !d.DealType.IsValid() {
		return nil, ErrInvalidDealType
	}
	if !d.ExpiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	loc := d.Location
	if d.DealType != TypeInStore && !loc.IsPhysical() {
		loc = OnlineLocation()
	}

	return &Deal{
		id:             id,
		title:          strings.TrimSpace(d.Title),
		description:    strings.TrimSpace(d.Description),
		discount:       strings.TrimSpace(d.Discount),
		store:          strings.TrimSpace(d.Store),
		category:       d.Category,
		dealType:       d.DealType,
		promoCode:      strings.TrimSpace(d.PromoCode),
		affiliateURL:   strings.TrimSpace(d.AffiliateURL),
		platform:       strings.TrimSpace(d.Platform),
		location:       loc,
		expiresAt:      d.ExpiresAt,
		createdAt:      now,
		postedBy:       postedBy,
		image:          d.Image,
		userCategories: d.UserCategories,
	}, nil
}

// Reconstruct rebuilds a deal from stored state, bypassing draft validation.
func Reconstruct(
	id string,
	d Draft,
	postedBy PostedBy,
	redemptionID string,
	verified, flagged int,
	createdAt time.Time,
) *Deal {
	return &Deal{
		id:             id,
		title:          d.Title,
		description:    d.Description,
		discount:       d.Discount,
		store:          d.Store,
		category:       d.Category,
		dealType:       d.DealType,
		promoCode:      d.PromoCode,
		affiliateURL:   d.AffiliateURL,
		platform:       d.Platform,
		redemptionID:   redemptionID,
		location:       d.Location,
		expiresAt:      d.ExpiresAt,
		createdAt:      createdAt,
		postedBy:       postedBy,
		verified:       verified,
		flagged:        flagged,
		image:          d.Image,
		userCategories: d.UserCategories,
	}
}

// Warnings reports data-quality issues that are tolerated but worth
// surfacing. The catalog accepts such deals as the source data does.
func (d *Deal) Warnings() []string {
	var ws []string
	switch d.dealType {
	case TypeOnline:
		if d.promoCode == "" && d.platform == "" {
			ws = append(ws, "online deal has neither promo code nor platform")
		}
	case TypeAffiliate:
		if d.affiliateURL == "" {
			ws = append(ws, "affiliate deal has no affiliate url")
		}
	case TypeInStore:
		if !d.location.IsPhysical() {
			ws = append(ws, "in-store deal has no physical location")
		}
	}
	return ws
}

// Clone returns an independent copy, so query results can be handed out
// without exposing store-owned records.
func (d *Deal) Clone() *Deal {
	dup := *d
	if d.userCategories != nil {
		dup.userCategories = append([]UserCategory(nil), d.userCategories...)
	}
	return &dup
}

// IsExpired is a derived display property. Expired deals stay in the
// catalog; expiry never removes them.
func (d *Deal) IsExpired(now time.Time) bool {
	return !d.expiresAt.After(now)
}

func (d *Deal) TargetedAt(c UserCategory) bool {
	for _, uc := range d.userCategories {
		if uc == c {
			return true
		}
	}
	return false
}

// IncrementVerified bumps the social-proof counter. Monotonic.
func (d *Deal) IncrementVerified() {
	d.verified++
}

// IncrementFlagged bumps the flag counter. Monotonic.
func (d *Deal) IncrementFlagged() {
	d.flagged++
}

// SetRedemptionID records the shared redemption identifier minted on the
// first code display. No-op once set.
func (d *Deal) SetRedemptionID(id string) {
	if d.redemptionID == "" {
		d.redemptionID = id
	}
}

func (d *Deal) ID() string                     { return d.id }
func (d *Deal) Title() string                  { return d.title }
func (d *Deal) Description() string            { return d.description }
func (d *Deal) Discount() string               { return d.discount }
func (d *Deal) Store() string                  { return d.store }
func (d *Deal) Category() string               { return d.category }
func (d *Deal) DealType() Type                 { return d.dealType }
func (d *Deal) PromoCode() string              { return d.promoCode }
func (d *Deal) AffiliateURL() string           { return d.affiliateURL }
func (d *Deal) Platform() string               { return d.platform }
func (d *Deal) RedemptionID() string           { return d.redemptionID }
func (d *Deal) Location() Location             { return d.location }
func (d *Deal) ExpiresAt() time.Time           { return d.expiresAt }
func (d *Deal) CreatedAt() time.Time           { return d.createdAt }
func (d *Deal) PostedBy() PostedBy             { return d.postedBy }
func (d *Deal) Verified() int                  { return d.verified }
func (d *Deal) Flagged() int                   { return d.flagged }
func (d *Deal) Image() string                  { return d.image }
func (d *Deal) UserCategories() []UserCategory { return d.userCategories }
