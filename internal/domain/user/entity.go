package user

import (
	"errors"
	"strings"
	"time"

	"savesphere/internal/domain/deal"
)

var ErrMissingName = errors.New("user name is required")

// User is a catalog member. Points only ever increase, as fixed rewards
// for verify/post/redeem actions.
type User struct {
	id              string
	name            string
	avatar          string
	points          int
	dealsPosted     int
	dealsVerified   int
	joined          time.Time
	isPremium       bool
	location        string
	category        deal.UserCategory
	reputation      int
	trustedVerifier bool
}

func New(id, name, avatar string, joined time.Time) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	return &User{
		id:     id,
		name:   strings.TrimSpace(name),
		avatar: avatar,
		joined: joined,
	}, nil
}

func Reconstruct(
	id, name, avatar string,
	points, dealsPosted, dealsVerified int,
	joined time.Time,
	isPremium bool,
	location string,
	category deal.UserCategory,
	reputation int,
	trustedVerifier bool,
) *User {
	return &User{
		id:              id,
		name:            name,
		avatar:          avatar,
		points:          points,
		dealsPosted:     dealsPosted,
		dealsVerified:   dealsVerified,
		joined:          joined,
		isPremium:       isPremium,
		location:        location,
		category:        category,
		reputation:      reputation,
		trustedVerifier: trustedVerifier,
	}
}

// AwardPoints credits a fixed action reward. Negative deltas are ignored;
// the balance is monotonically non-decreasing.
func (u *User) AwardPoints(delta int) {
	if delta > 0 {
		u.points += delta
	}
}

func (u *User) RecordDealPosted()   { u.dealsPosted++ }
func (u *User) RecordDealVerified() { u.dealsVerified++ }

func (u *User) Snapshot() deal.PostedBy {
	return deal.PostedBy{UserID: u.id, Name: u.name, Avatar: u.avatar}
}

func (u *User) ID() string                  { return u.id }
func (u *User) Name() string                { return u.name }
func (u *User) Avatar() string              { return u.avatar }
func (u *User) Points() int                 { return u.points }
func (u *User) DealsPosted() int            { return u.dealsPosted }
func (u *User) DealsVerified() int          { return u.dealsVerified }
func (u *User) Joined() time.Time           { return u.joined }
func (u *User) IsPremium() bool             { return u.isPremium }
func (u *User) Location() string            { return u.location }
func (u *User) Category() deal.UserCategory { return u.category }
func (u *User) Reputation() int             { return u.reputation }
func (u *User) TrustedVerifier() bool       { return u.trustedVerifier }
