// internal/domain/auth/dto.go
package auth

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

// ProviderLoginRequest exchanges a federated provider token
type ProviderLoginRequest struct {
	Token string `json:"token" binding:"required"`
}
