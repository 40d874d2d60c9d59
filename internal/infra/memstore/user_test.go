//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"

	"savesphere/internal/domain/user"
	"savesphere/internal/infra"
	"savesphere/internal/infra/memstore"
	"savesphere/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreFindByID(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewUserStore()
	s.Seed([]*user.User{builder.NewUserBuilder().WithID("u1").WithPoints(100).BuildDomain()})

	t.Run("found", func(t *testing.T) {
		u, err := s.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 100, u.Points())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.FindByID(ctx, "nope")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("clone does not write through", func(t *testing.T) {
		u, err := s.FindByID(ctx, "u1")
		require.NoError(t, err)
		u.AwardPoints(50)

		again, err := s.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 100, again.Points())
	})
}

func TestUserStoreMutate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies and persists", func(t *testing.T) {
		s := memstore.NewUserStore()
		s.Seed([]*user.User{builder.NewUserBuilder().WithID("u1").WithPoints(100).BuildDomain()})

		u, err := s.Mutate(ctx, "u1", func(u *user.User) error {
			u.AwardPoints(10)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 110, u.Points())

		stored, err := s.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 110, stored.Points())
	})

	t.Run("fn error aborts", func(t *testing.T) {
		s := memstore.NewUserStore()
		s.Seed([]*user.User{builder.NewUserBuilder().WithID("u1").BuildDomain()})
		boom := errors.New("boom")

		_, err := s.Mutate(ctx, "u1", func(*user.User) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing user", func(t *testing.T) {
		s := memstore.NewUserStore()
		_, err := s.Mutate(ctx, "nope", func(*user.User) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
