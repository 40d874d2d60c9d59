package response

import (
	"time"

	"github.com/jinzhu/copier"

	"savesphere/internal/usecase/queries"
)

type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar"`
	Points          int       `json:"points"`
	DealsPosted     int       `json:"deals_posted"`
	DealsVerified   int       `json:"deals_verified"`
	Joined          time.Time `json:"joined"`
	IsPremium       bool      `json:"is_premium"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Reputation      int       `json:"reputation"`
	TrustedVerifier bool      `json:"trusted_verifier"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
