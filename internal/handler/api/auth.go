package api

import (
	"errors"
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Request verification code
// @Description Issue a one-time verification code for the phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestCodeRequest true "Phone number"
// @Success 200 {object} resdto.RequestCodeResponse
// @Failure 400 {object} map[string]string
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req reqdto.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.RequestCode(c.Request.Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Phone number must be exactly 10 digits",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RequestCodeResponse{
		Message:   "Verification code sent",
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary Verify code
// @Description Verify a one-time code and log in, creating the account on first use
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Phone and code"
// @Success 200 {object} resdto.VerifyCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.VerifyCode(c.Request.Context(), req.Phone, req.Code, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Phone number must be exactly 10 digits",
			})
		case errors.Is(err, commands.ErrInvalidCode):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired verification code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyCodeResult(result))
}

// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Log out
// @Description Log out the current session; tokens are stateless, so the client discards its copy
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
