//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkspot/internal/infra/memstore"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	t.Run("returns the profile", func(t *testing.T) {
		store := memstore.New()
		users := queries.NewUserQueries(store)

		entity, err := builder.NewUserBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)

		var id int64
		err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			id, err = tx.Users().Create(ctx, entity)
			return err
		})
		require.NoError(t, err)

		view, err := users.GetCurrentUser(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "9876543210", view.Phone)
		assert.Equal(t, "Test Driver", view.Name)
		assert.True(t, view.IsAdmin)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := queries.NewUserQueries(memstore.New())

		_, err := users.GetCurrentUser(context.Background(), 999)

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
