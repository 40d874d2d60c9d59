//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savesphere/internal/domain/user"
	"savesphere/internal/infra/memstore"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/queries"
	"savesphere/tests/common/builder"
)

func TestUserGetByID(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewUserStore()
	store.Seed([]*user.User{
		builder.NewUserBuilder().WithID("u1").WithName("Arjun Sharma").WithPoints(345).BuildDomain(),
	})
	q := queries.NewUserQueries(store)

	t.Run("profile projection", func(t *testing.T) {
		view, err := q.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "u1", view.ID)
		assert.Equal(t, "Arjun Sharma", view.Name)
		assert.Equal(t, 345, view.Points)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := q.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
