package dto

// LoginRequest captures credential input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse contains the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ReloadResponse summarises a content reload.
type ReloadResponse struct {
	Source   string `json:"source"`
	Services int    `json:"services"`
	FAQs     int    `json:"faqs"`
}
