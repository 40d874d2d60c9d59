//go:build unit

package catalog_test

import (
	"testing"

	"savesphere/internal/domain/catalog"
	"savesphere/internal/domain/deal"
	"savesphere/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMatches(t *testing.T) {
	inStore := builder.NewDealBuilder().
		WithTitle("50% Off All Produce").
		WithStore("Whole Foods Market").
		WithCategory("Groceries").
		BuildReconstructed()
	online := builder.NewDealBuilder().AsOnline().
		WithTitle("FLAT 500 Off on Electronics").
		WithStore("Amazon").
		WithCategory("Electronics").
		BuildReconstructed()

	t.Run("zero filters match everything", func(t *testing.T) {
		assert.True(t, catalog.Matches(inStore, catalog.Filters{}))
		assert.True(t, catalog.Matches(online, catalog.Filters{}))
	})

	t.Run("deal type gate", func(t *testing.T) {
		f := catalog.Filters{DealType: "in-store"}
		assert.True(t, catalog.Matches(inStore, f))
		assert.False(t, catalog.Matches(online, f))

		assert.True(t, catalog.Matches(online, catalog.Filters{DealType: catalog.TypeFilterAll}))
	})

	t.Run("category gate", func(t *testing.T) {
		f := catalog.Filters{Category: strPtr("Groceries")}
		assert.True(t, catalog.Matches(inStore, f))
		assert.False(t, catalog.Matches(online, f))
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		cases := []struct {
			name    string
			search  string
			matches bool
		}{
			{"title match", "produce", true},
			{"title match different case", "PRODUCE", true},
			{"store match", "whole foods", true},
			{"description match", "fresh", true},
			{"no match", "pizza", false},
			{"blank search passes", "", true},
			{"whitespace search passes", "   ", true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.matches, catalog.Matches(inStore, catalog.Filters{Search: c.search}))
			})
		}
	})

	t.Run("search covers promo code and platform", func(t *testing.T) {
		assert.True(t, catalog.Matches(online, catalog.Filters{Search: "techsave"}))
		assert.True(t, catalog.Matches(online, catalog.Filters{Search: "amazon"}))
		assert.False(t, catalog.Matches(inStore, catalog.Filters{Search: "techsave"}))
	})

	t.Run("gates are conjunctive", func(t *testing.T) {
		f := catalog.Filters{
			Search:   "electronics",
			DealType: string(deal.TypeOnline),
			Category: strPtr("Electronics"),
		}
		assert.True(t, catalog.Matches(online, f))

		f.Category = strPtr("Groceries")
		assert.False(t, catalog.Matches(online, f))
	})
}
