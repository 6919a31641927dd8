package request

type RequestCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
	// Name is only used on first verification, when the account is created.
	Name string `json:"name,omitempty"`
}
