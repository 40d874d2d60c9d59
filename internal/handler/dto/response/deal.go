package response

import (
	"time"

	"github.com/jinzhu/copier"

	"savesphere/internal/usecase/commands"
	"savesphere/internal/usecase/queries"
)

type LocationResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type PostedByResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type DealResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Discount       string           `json:"discount"`
	Store          string           `json:"store"`
	Category       string           `json:"category"`
	DealType       string           `json:"deal_type"`
	PromoCode      string           `json:"promo_code,omitempty"`
	AffiliateURL   string           `json:"affiliate_url,omitempty"`
	Platform       string           `json:"platform,omitempty"`
	Location       LocationResponse `json:"location"`
	ExpiresAt      time.Time        `json:"expires_at"`
	CreatedAt      time.Time        `json:"created_at"`
	PostedBy       PostedByResponse `json:"posted_by"`
	Verified       int              `json:"verified"`
	Flagged        int              `json:"flagged"`
	Image          string           `json:"image,omitempty"`
	UserCategories []string         `json:"user_categories,omitempty"`
	Age            string           `json:"age"`
	Remaining      string           `json:"remaining"`
	Urgency        string           `json:"urgency"`
	Expired        bool             `json:"expired"`
}

type DealDetailResponse struct {
	DealResponse
	RedemptionState string `json:"redemption_state"`
	RedemptionCode  string `json:"redemption_code,omitempty"`
}

type DealListResponse struct {
	Deals []*DealResponse `json:"deals"`
	Total int             `json:"total"`
}

type PostDealResponse struct {
	DealID      string `json:"deal_id"`
	PointsDelta int    `json:"points_delta"`
	TotalPoints int    `json:"total_points"`
}

type EngagementResponse struct {
	DealID      string `json:"deal_id"`
	Count       int    `json:"count"`
	Counted     bool   `json:"counted"`
	PointsDelta int    `json:"points_delta"`
	TotalPoints int    `json:"total_points"`
}

type RedemptionResponse struct {
	DealID      string `json:"deal_id"`
	State       string `json:"state"`
	Code        string `json:"code,omitempty"`
	PointsDelta int    `json:"points_delta"`
	TotalPoints int    `json:"total_points"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func FromDealView(view *queries.DealView) *DealResponse {
	var resp DealResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDealDetailView(view *queries.DealDetailView) *DealDetailResponse {
	return &DealDetailResponse{
		DealResponse:    *FromDealView(&view.DealView),
		RedemptionState: view.RedemptionState,
		RedemptionCode:  view.RedemptionCode,
	}
}

func FromDealList(views []*queries.DealView) *DealListResponse {
	deals := make([]*DealResponse, len(views))
	for i, v := range views {
		deals[i] = FromDealView(v)
	}
	return &DealListResponse{Deals: deals, Total: len(deals)}
}

func FromPostDealResult(r *commands.PostDealResult) *PostDealResponse {
	return &PostDealResponse{
		DealID:      r.DealID,
		PointsDelta: r.PointsDelta,
		TotalPoints: r.TotalPoints,
	}
}

func FromEngagementResult(r *commands.EngagementResult) *EngagementResponse {
	return &EngagementResponse{
		DealID:      r.DealID,
		Count:       r.Count,
		Counted:     r.Counted,
		PointsDelta: r.PointsDelta,
		TotalPoints: r.TotalPoints,
	}
}

func FromRedemptionResult(r *commands.RedemptionResult) *RedemptionResponse {
	return &RedemptionResponse{
		DealID:      r.DealID,
		State:       r.State.String(),
		Code:        r.Code,
		PointsDelta: r.PointsDelta,
		TotalPoints: r.TotalPoints,
	}
}
