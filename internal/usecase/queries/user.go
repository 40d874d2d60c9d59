package queries

import (
	"context"
	"time"

	"savesphere/internal/domain/user"
	"savesphere/internal/infra"
	"savesphere/internal/pkg/errs"
)

// UserView is the profile page projection.
type UserView struct {
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

type UserReadStore interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id string) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id string) (*UserView, error) {
	u, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "find user")
	}
	return toUserView(u), nil
}

func toUserView(u *user.User) *UserView {
	return &UserView{
		ID:              u.ID(),
		Name:            u.Name(),
		Avatar:          u.Avatar(),
		Points:          u.Points(),
		DealsPosted:     u.DealsPosted(),
		DealsVerified:   u.DealsVerified(),
		Joined:          u.Joined(),
		IsPremium:       u.IsPremium(),
		Location:        u.Location(),
		Category:        string(u.Category()),
		Reputation:      u.Reputation(),
		TrustedVerifier: u.TrustedVerifier(),
	}
}
