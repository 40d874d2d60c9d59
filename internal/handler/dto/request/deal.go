package request

import (
	"strings"
	"time"

	"savesphere/internal/domain/deal"
	"savesphere/internal/usecase/commands"
)

type PostDealRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Discount       string    `json:"discount" binding:"required"`
	Store          string    `json:"store" binding:"required"`
	Category       string    `json:"category"`
	DealType       string    `json:"deal_type" binding:"required"`
	PromoCode      string    `json:"promo_code,omitempty"`
	AffiliateURL   string    `json:"affiliate_url,omitempty"`
	Platform       string    `json:"platform,omitempty"`
	Address        string    `json:"address,omitempty"`
	Lat            float64   `json:"lat,omitempty"`
	Lng            float64   `json:"lng,omitempty"`
	ExpiresAt      time.Time `json:"expires_at" binding:"required"`
	Image          string    `json:"image,omitempty"`
	UserCategories []string  `json:"user_categories,omitempty"`
}

func (r PostDealRequest) ToInput() commands.PostDealInput {
	audiences := make([]deal.UserCategory, 0, len(r.UserCategories))
	for _, c := range r.UserCategories {
		audiences = append(audiences, deal.UserCategory(c))
	}
	return commands.PostDealInput{
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		Discount:       strings.TrimSpace(r.Discount),
		Store:          strings.TrimSpace(r.Store),
		Category:       r.Category,
		DealType:       deal.Type(r.DealType),
		PromoCode:      strings.TrimSpace(r.PromoCode),
		AffiliateURL:   strings.TrimSpace(r.AffiliateURL),
		Platform:       strings.TrimSpace(r.Platform),
		Address:        strings.TrimSpace(r.Address),
		Lat:            r.Lat,
		Lng:            r.Lng,
		ExpiresAt:      r.ExpiresAt,
		Image:          r.Image,
		UserCategories: audiences,
	}
}

type VerificationRequest struct {
	Subject string `json:"subject" binding:"required"`
}
