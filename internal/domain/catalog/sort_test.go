//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"savesphere/internal/domain/catalog"
	"savesphere/internal/domain/deal"
	"savesphere/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestSortKey(t *testing.T) {
	assert.True(t, catalog.SortKey("newest").IsValid())
	assert.True(t, catalog.SortKey("expiring").IsValid())
	assert.True(t, catalog.SortKey("popular").IsValid())
	assert.True(t, catalog.SortKey("distance").IsValid())
	assert.False(t, catalog.SortKey("cheapest").IsValid())
	assert.False(t, catalog.SortKey("").IsValid())
}

func TestCompare(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	older := builder.NewDealBuilder().
		WithCreatedAt(now.Add(-2 * time.Hour)).
		WithExpiresAt(now.Add(48 * time.Hour)).
		WithVerified(5).
		BuildReconstructed()
	newer := builder.NewDealBuilder().
		WithCreatedAt(now.Add(-time.Hour)).
		WithExpiresAt(now.Add(24 * time.Hour)).
		WithVerified(20).
		BuildReconstructed()

	t.Run("newest orders by descending createdAt", func(t *testing.T) {
		assert.Negative(t, catalog.Compare(newer, older, catalog.SortNewest, nil))
		assert.Positive(t, catalog.Compare(older, newer, catalog.SortNewest, nil))
	})

	t.Run("expiring orders by ascending expiresAt", func(t *testing.T) {
		assert.Negative(t, catalog.Compare(newer, older, catalog.SortExpiring, nil))
		assert.Positive(t, catalog.Compare(older, newer, catalog.SortExpiring, nil))
	})

	t.Run("popular orders by descending verified count", func(t *testing.T) {
		assert.Negative(t, catalog.Compare(newer, older, catalog.SortPopular, nil))
		assert.Positive(t, catalog.Compare(older, newer, catalog.SortPopular, nil))
	})

	t.Run("equal keys tie", func(t *testing.T) {
		twin := builder.NewDealBuilder().
			WithCreatedAt(newer.CreatedAt()).
			WithExpiresAt(newer.ExpiresAt()).
			WithVerified(newer.Verified()).
			BuildReconstructed()
		assert.Zero(t, catalog.Compare(newer, twin, catalog.SortNewest, nil))
		assert.Zero(t, catalog.Compare(newer, twin, catalog.SortExpiring, nil))
		assert.Zero(t, catalog.Compare(newer, twin, catalog.SortPopular, nil))
	})

	t.Run("distance orders by haversine from origin", func(t *testing.T) {
		downtown := builder.NewDealBuilder().WithCoordinates(37.7749, -122.4194).BuildReconstructed()
		oakland := builder.NewDealBuilder().WithCoordinates(37.8044, -122.2712).BuildReconstructed()
		origin := &deal.Coordinates{Lat: 37.7749, Lng: -122.4194}

		assert.Negative(t, catalog.Compare(downtown, oakland, catalog.SortDistance, origin))
		assert.Positive(t, catalog.Compare(oakland, downtown, catalog.SortDistance, origin))
	})

	t.Run("distance without origin ties every pair", func(t *testing.T) {
		downtown := builder.NewDealBuilder().WithCoordinates(37.7749, -122.4194).BuildReconstructed()
		oakland := builder.NewDealBuilder().WithCoordinates(37.8044, -122.2712).BuildReconstructed()

		assert.Zero(t, catalog.Compare(downtown, oakland, catalog.SortDistance, nil))
	})
}
