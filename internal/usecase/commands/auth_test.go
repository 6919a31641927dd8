//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/infra/memstore"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*memstore.Store, *clock.MockClock, commands.AuthCommands, *jwt.Service) {
	store := memstore.New()
	clk := clock.NewMockClock(testNow)
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	return store, clk, commands.NewAuthCommands(store, jwtService, clk, cfg.OTP), jwtService
}

func TestRequestCode(t *testing.T) {
	t.Run("issues a code with the configured ttl", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture()

		result, err := auth.RequestCode(context.Background(), "9876543210")

		require.NoError(t, err)
		assert.Equal(t, testNow.Add(10*time.Minute), result.ExpiresAt)
	})

	t.Run("rejects a malformed phone", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture()

		_, err := auth.RequestCode(context.Background(), "12345")

		require.ErrorIs(t, err, commands.ErrInvalidPhone)
	})
}

func TestVerifyCode(t *testing.T) {
	const phone = "9876543210"

	t.Run("first verified user becomes admin and gets a valid token", func(t *testing.T) {
		store, _, auth, jwtService := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)

		result, err := auth.VerifyCode(context.Background(), phone, "123456", "Asha")

		require.NoError(t, err)
		assert.Equal(t, phone, result.Phone)
		assert.Equal(t, "Asha", result.Name)
		assert.True(t, result.IsAdmin)
		require.NotEmpty(t, result.AccessToken)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("second user is not admin", func(t *testing.T) {
		store, _, auth, _ := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)
		seedCode(t, store, "9876500000", "654321", testNow)

		first, err := auth.VerifyCode(context.Background(), phone, "123456", "Asha")
		require.NoError(t, err)
		require.True(t, first.IsAdmin)

		second, err := auth.VerifyCode(context.Background(), "9876500000", "654321", "Ravi")
		require.NoError(t, err)
		assert.False(t, second.IsAdmin)
		assert.NotEqual(t, first.UserID, second.UserID)
	})

	t.Run("returning user keeps the original account", func(t *testing.T) {
		store, _, auth, _ := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)

		first, err := auth.VerifyCode(context.Background(), phone, "123456", "Asha")
		require.NoError(t, err)

		seedCode(t, store, phone, "222222", testNow)
		again, err := auth.VerifyCode(context.Background(), phone, "222222", "Someone Else")

		require.NoError(t, err)
		assert.Equal(t, first.UserID, again.UserID)
		assert.Equal(t, "Asha", again.Name)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		store, _, auth, _ := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)

		_, err := auth.VerifyCode(context.Background(), phone, "999999", "Asha")

		require.ErrorIs(t, err, commands.ErrInvalidCode)
	})

	t.Run("wrong length code is rejected without a lookup", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture()

		_, err := auth.VerifyCode(context.Background(), phone, "1234", "Asha")

		require.ErrorIs(t, err, commands.ErrInvalidCode)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		store, clk, auth, _ := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)

		clk.Add(10 * time.Minute)
		_, err := auth.VerifyCode(context.Background(), phone, "123456", "Asha")

		require.ErrorIs(t, err, commands.ErrInvalidCode)
	})

	t.Run("code cannot be reused", func(t *testing.T) {
		store, _, auth, _ := newAuthFixture()
		seedCode(t, store, phone, "123456", testNow)

		_, err := auth.VerifyCode(context.Background(), phone, "123456", "Asha")
		require.NoError(t, err)

		_, err = auth.VerifyCode(context.Background(), phone, "123456", "Asha")
		require.ErrorIs(t, err, commands.ErrInvalidCode)
	})

	t.Run("malformed phone is rejected", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture()

		_, err := auth.VerifyCode(context.Background(), "12345", "123456", "Asha")

		require.ErrorIs(t, err, commands.ErrInvalidPhone)
	})
}
