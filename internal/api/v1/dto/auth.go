package dto

// LoginRequestDTO is the body of POST /login/
type LoginRequestDTO struct {
	Username *string `json:"username" validate:"required,notblank"`
	Password *string `json:"password" validate:"required,notblank"`
}

// TokenPairDTO is returned by a successful login
type TokenPairDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequestDTO is the body of POST /token/refresh/
type RefreshRequestDTO struct {
	Refresh *string `json:"refresh" validate:"required,notblank"`
}

// RefreshResponseDTO carries the new access token. Refresh is only set when
// refresh tokens are rotated.
type RefreshResponseDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
