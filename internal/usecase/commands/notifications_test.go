//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkspot/internal/domain/notification"
	"parkspot/internal/infra/memstore"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, store *memstore.Store, userID int64, title string) int64 {
	t.Helper()

	n, err := notification.NewNotification(userID, title, "message", notification.KindBooking, testNow)
	require.NoError(t, err)

	var id int64
	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Notifications().Create(ctx, n)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestMarkRead(t *testing.T) {
	t.Run("marks only the addressed notification", func(t *testing.T) {
		store := memstore.New()
		cmds := commands.NewNotificationCommands(store)
		first := seedNotification(t, store, 1, "Booking Created")
		seedNotification(t, store, 1, "Payment Successful")

		require.NoError(t, cmds.MarkRead(context.Background(), first, 1))

		read := 0
		for _, n := range listNotifications(t, store, 1) {
			if n.IsRead() {
				read++
				assert.Equal(t, first, n.ID())
			}
		}
		assert.Equal(t, 1, read)
	})

	t.Run("another user's notification stays invisible", func(t *testing.T) {
		store := memstore.New()
		cmds := commands.NewNotificationCommands(store)
		id := seedNotification(t, store, 1, "Booking Created")

		err := cmds.MarkRead(context.Background(), id, 2)

		require.ErrorIs(t, err, commands.ErrNotificationNotFound)
		assert.False(t, listNotifications(t, store, 1)[0].IsRead())
	})

	t.Run("unknown notification", func(t *testing.T) {
		cmds := commands.NewNotificationCommands(memstore.New())

		err := cmds.MarkRead(context.Background(), 999, 1)

		require.ErrorIs(t, err, commands.ErrNotificationNotFound)
	})
}

func TestMarkAllRead(t *testing.T) {
	t.Run("flips every unread notification of the user", func(t *testing.T) {
		store := memstore.New()
		cmds := commands.NewNotificationCommands(store)
		seedNotification(t, store, 1, "Booking Created")
		seedNotification(t, store, 1, "Payment Successful")
		seedNotification(t, store, 2, "Booking Created")

		require.NoError(t, cmds.MarkAllRead(context.Background(), 1))

		for _, n := range listNotifications(t, store, 1) {
			assert.True(t, n.IsRead())
		}
		assert.False(t, listNotifications(t, store, 2)[0].IsRead())
	})
}
