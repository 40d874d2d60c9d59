//go:build unit || e2e

package builder

import (
	"time"

	domdeal "savesphere/internal/domain/deal"
	domuser "savesphere/internal/domain/user"
)

type UserBuilder struct {
	ID            string
	Name          string
	Avatar        string
	Points        int
	DealsPosted   int
	DealsVerified int
	Joined        time.Time
	IsPremium     bool
	Location      string
	Category      domdeal.UserCategory
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            "u1",
		Name:          "Arjun Sharma",
		Avatar:        "https://i.pravatar.cc/150?img=11",
		Points:        345,
		DealsPosted:   12,
		DealsVerified: 28,
		Joined:        time.Now().AddDate(0, 0, -350),
		Location:      "Mumbai, Maharashtra",
		Category:      domdeal.CategoryStudent,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() *domuser.User {
	return domuser.Reconstruct(
		b.ID, b.Name, b.Avatar,
		b.Points, b.DealsPosted, b.DealsVerified,
		b.Joined, b.IsPremium, b.Location, b.Category,
		0, false,
	)
}

func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithPoints(points int) *UserBuilder {
	b.Points = points
	return b
}

func (b *UserBuilder) WithCategory(c domdeal.UserCategory) *UserBuilder {
	b.Category = c
	return b
}
