//go:build e2e

package helper

import (
	"context"
	"net/http"
	"testing"
	"time"

	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/pkg/passcode"
	"parkspot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type AuthTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewAuthTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *AuthTestHelper {
	return &AuthTestHelper{pool: pool, cfg: cfg}
}

func (h *AuthTestHelper) CreateTestUser(t *testing.T, phone, name string, isAdmin bool) int64 {
	t.Helper()

	var userID int64
	err := h.pool.QueryRow(context.Background(),
		"INSERT INTO users (phone, name, is_admin, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		phone, name, isAdmin, time.Now().UTC()).Scan(&userID)
	require.NoError(t, err)

	return userID
}

// SeedVerificationCode stores a hashed code the way the request endpoint
// would, so verification can run against a known plaintext.
func (h *AuthTestHelper) SeedVerificationCode(t *testing.T, phone, code string) {
	t.Helper()

	hash, err := passcode.Hash(code)
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = h.pool.Exec(context.Background(),
		"INSERT INTO otp_codes (phone, code_hash, expires_at, verified, created_at) VALUES ($1, $2, $3, false, $4)",
		phone, hash, now.Add(10*time.Minute), now)
	require.NoError(t, err)
}

func (h *AuthTestHelper) VerifyCode(t *testing.T, router *gin.Engine, phone, code, name string) *response.VerifyCodeResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/otp/verify",
		request.VerifyCodeRequest{Phone: phone, Code: code, Name: name}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.VerifyCodeResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken, "access token missing from verify response")

	return &res
}

// Login runs the full OTP round trip and returns a bearer token.
func (h *AuthTestHelper) Login(t *testing.T, router *gin.Engine, phone, name string) string {
	t.Helper()

	h.SeedVerificationCode(t, phone, "123456")
	return h.VerifyCode(t, router, phone, "123456", name).AccessToken
}

// GenerateToken signs a token directly, bypassing the OTP flow, for tests
// that only need an authenticated request.
func (h *AuthTestHelper) GenerateToken(t *testing.T, userID int64, isAdmin bool) string {
	t.Helper()

	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(userID, isAdmin)
	require.NoError(t, err)

	return token
}

func (h *AuthTestHelper) CreateExpiredToken(t *testing.T, userID int64, isAdmin bool) string {
	t.Helper()

	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, isAdmin)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	return token
}
