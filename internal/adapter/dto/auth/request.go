package auth

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}
