package queries

import (
	"context"
	"time"

	"savesphere/internal/domain/catalog"
	"savesphere/internal/domain/deal"
	"savesphere/internal/domain/redemption"
	"savesphere/internal/infra"
	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/clock"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/pkg/geo"
)

const MaxListLimit = 200

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

type LocationView struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type PostedByView struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// DealView is a deal snapshot enriched with the derived display fields
// (age, remaining, urgency) computed against "now" at query time.
type DealView struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Discount       string       `json:"discount"`
	Store          string       `json:"store"`
	Category       string       `json:"category"`
	DealType       string       `json:"deal_type"`
	PromoCode      string       `json:"promo_code,omitempty"`
	AffiliateURL   string       `json:"affiliate_url,omitempty"`
	Platform       string       `json:"platform,omitempty"`
	Location       LocationView `json:"location"`
	ExpiresAt      time.Time    `json:"expires_at"`
	CreatedAt      time.Time    `json:"created_at"`
	PostedBy       PostedByView `json:"posted_by"`
	Verified       int          `json:"verified"`
	Flagged        int          `json:"flagged"`
	Image          string       `json:"image,omitempty"`
	UserCategories []string     `json:"user_categories,omitempty"`
	Age            string       `json:"age"`
	Remaining      string       `json:"remaining"`
	Urgency        string       `json:"urgency"`
	Expired        bool         `json:"expired"`
}

// DealDetailView adds the viewer's redemption position.
type DealDetailView struct {
	DealView
	RedemptionState string `json:"redemption_state"`
	RedemptionCode  string `json:"redemption_code,omitempty"`
}

// CatalogOptions mirror the explore page controls.
type CatalogOptions struct {
	Search   string
	DealType string
	Category *string
	Sort     string
	Origin   *deal.Coordinates
	Limit    int
}

type DealReadStore interface {
	ListAll(ctx context.Context) ([]*deal.Deal, error)
	FindByID(ctx context.Context, id string) (*deal.Deal, error)
}

type RedemptionReadStore interface {
	Find(ctx context.Context, dealID, userID string, dealType deal.Type) (*redemption.Redemption, error)
}

type CatalogQueries interface {
	List(ctx context.Context, opts CatalogOptions) ([]*DealView, error)
	GetByID(ctx context.Context, id, viewerID string) (*DealDetailView, error)
	Featured(ctx context.Context, limit int) ([]*DealView, error)
	Nearby(ctx context.Context, origin deal.Coordinates, radiusKm float64, limit int) ([]*DealView, error)
	Trending(ctx context.Context, audience deal.UserCategory, limit int) ([]*DealView, error)
	Categories() []string
}

type catalogQueriesImpl struct {
	deals       DealReadStore
	redemptions RedemptionReadStore
	clock       clock.Clock
	metrics     *metrics.CatalogMetrics
}

func NewCatalogQueries(deals DealReadStore, redemptions RedemptionReadStore, clk clock.Clock, m *metrics.CatalogMetrics) CatalogQueries {
	return &catalogQueriesImpl{deals: deals, redemptions: redemptions, clock: clk, metrics: m}
}

func (q *catalogQueriesImpl) List(ctx context.Context, opts CatalogOptions) ([]*DealView, error) {
	sortKey := catalog.SortKey(opts.Sort)
	if opts.Sort == "" {
		sortKey = catalog.SortNewest
	}
	if !sortKey.IsValid() {
		return nil, errs.ErrInvalidSort
	}

	all, err := q.deals.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list deals")
	}

	result := catalog.Query(all, catalog.Options{
		Filters: catalog.Filters{
			Search:   opts.Search,
			DealType: opts.DealType,
			Category: opts.Category,
		},
		Sort:   sortKey,
		Origin: opts.Origin,
	})

	limit := ValidateLimit(opts.Limit)
	if len(result) > limit {
		result = result[:limit]
	}

	dealType := opts.DealType
	if dealType == "" {
		dealType = catalog.TypeFilterAll
	}
	q.metrics.RecordQuery(dealType, sortKey.String())

	return q.toViews(result), nil
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id, viewerID string) (*DealDetailView, error) {
	d, err := q.deals.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, errs.Wrap(err, "find deal")
	}

	view := &DealDetailView{
		DealView:        *q.toView(d),
		RedemptionState: redemption.StateAvailable.String(),
	}

	if viewerID != "" {
		r, err := q.redemptions.Find(ctx, d.ID(), viewerID, d.DealType())
		if err != nil {
			return nil, errs.Wrap(err, "load redemption state")
		}
		view.RedemptionState = r.State().String()
		view.RedemptionCode = r.Code()
	}
	return view, nil
}

// Featured picks the soonest-expiring deals that have not expired yet.
func (q *catalogQueriesImpl) Featured(ctx context.Context, limit int) ([]*DealView, error) {
	all, err := q.deals.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list deals")
	}
	now := q.clock.Now()
	live := make([]*deal.Deal, 0, len(all))
	for _, d := range all {
		if !d.IsExpired(now) {
			live = append(live, d)
		}
	}
	result := catalog.Query(live, catalog.Options{Sort: catalog.SortExpiring})
	return q.toViews(capDeals(result, limit)), nil
}

func (q *catalogQueriesImpl) Nearby(ctx context.Context, origin deal.Coordinates, radiusKm float64, limit int) ([]*DealView, error) {
	all, err := q.deals.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list deals")
	}
	inRange := make([]*deal.Deal, 0, len(all))
	for _, d := range all {
		loc := d.Location()
		if !loc.IsPhysical() {
			continue
		}
		if geo.DistanceKm(origin.Lat, origin.Lng, loc.Coordinates.Lat, loc.Coordinates.Lng) <= radiusKm {
			inRange = append(inRange, d)
		}
	}
	result := catalog.Query(inRange, catalog.Options{Sort: catalog.SortDistance, Origin: &origin})
	return q.toViews(capDeals(result, limit)), nil
}

// Trending lists the most-verified deals targeted at an audience segment.
func (q *catalogQueriesImpl) Trending(ctx context.Context, audience deal.UserCategory, limit int) ([]*DealView, error) {
	all, err := q.deals.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list deals")
	}
	targeted := make([]*deal.Deal, 0, len(all))
	for _, d := range all {
		if audience == "" || d.TargetedAt(audience) {
			targeted = append(targeted, d)
		}
	}
	result := catalog.Query(targeted, catalog.Options{Sort: catalog.SortPopular})
	return q.toViews(capDeals(result, limit)), nil
}

func (q *catalogQueriesImpl) Categories() []string {
	return deal.Categories
}

func capDeals(deals []*deal.Deal, limit int) []*deal.Deal {
	limit = ValidateLimit(limit)
	if len(deals) > limit {
		return deals[:limit]
	}
	return deals
}

func (q *catalogQueriesImpl) toViews(deals []*deal.Deal) []*DealView {
	views := make([]*DealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, q.toView(d))
	}
	return views
}

func (q *catalogQueriesImpl) toView(d *deal.Deal) *DealView {
	now := q.clock.Now()
	cats := make([]string, 0, len(d.UserCategories()))
	for _, c := range d.UserCategories() {
		cats = append(cats, string(c))
	}
	return &DealView{
		ID:           d.ID(),
		Title:        d.Title(),
		Description:  d.Description(),
		Discount:     d.Discount(),
		Store:        d.Store(),
		Category:     d.Category(),
		DealType:     d.DealType().String(),
		PromoCode:    d.PromoCode(),
		AffiliateURL: d.AffiliateURL(),
		Platform:     d.Platform(),
		Location: LocationView{
			Address: d.Location().Address,
			Lat:     d.Location().Coordinates.Lat,
			Lng:     d.Location().Coordinates.Lng,
		},
		ExpiresAt:      d.ExpiresAt(),
		CreatedAt:      d.CreatedAt(),
		PostedBy:       PostedByView(d.PostedBy()),
		Verified:       d.Verified(),
		Flagged:        d.Flagged(),
		Image:          d.Image(),
		UserCategories: cats,
		Age:            deal.FormatAge(d.CreatedAt(), now),
		Remaining:      deal.FormatRemaining(d.ExpiresAt(), now),
		Urgency:        string(deal.Urgency(d.ExpiresAt(), now)),
		Expired:        d.IsExpired(now),
	}
}
