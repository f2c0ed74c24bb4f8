package presenter

import (
	authDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/auth"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	return &authDTO.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// ToAuthResponse converts usecase AuthResponse to DTO AuthResponse
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken: usecaseResp.AccessToken,
		ExpiresIn:   usecaseResp.ExpiresIn,
		TokenType:   "Bearer",
		User:        ToUserResponse(usecaseResp.User),
	}
}
