package response

import (
	"time"

	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type RequestCodeResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VerifyCodeResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Phone   string `json:"phone"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

func FromVerifyCodeResult(result *commands.VerifyCodeResult) *VerifyCodeResponse {
	return &VerifyCodeResponse{
		AccessToken: result.AccessToken,
		User: UserResponse{
			ID:      result.UserID,
			Phone:   result.Phone,
			Name:    result.Name,
			IsAdmin: result.IsAdmin,
		},
	}
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:      view.ID,
		Phone:   view.Phone,
		Name:    view.Name,
		IsAdmin: view.IsAdmin,
	}
}
