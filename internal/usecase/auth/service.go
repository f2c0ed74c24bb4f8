package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
	"github.com/johnquangdev/engagement-tracker/pkg/jwt"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// TokenStore remembers revoked access tokens by their ID
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles username/password authentication
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	revoked    TokenStore
	cost       int
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	jwtManager *jwt.Manager,
	revoked TokenStore,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		revoked:    revoked,
		cost:       bcrypt.DefaultCost,
	}
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User        *entities.User
	AccessToken string
	ExpiresIn   int64
}

// Register creates a new account with a bcrypt hashed password
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if input.Password == "" || len(input.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(input.Username, input.Email, string(hash))
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	// Check if user already exists
	if _, err := s.userRepo.FindByUsername(ctx, user.Username); err == nil {
		return nil, usecaseErrors.ErrUsernameTaken
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return nil, usecaseErrors.ErrEmailTaken
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ValidateSession validates an access token and loads its user
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*entities.User, *jwt.Claims, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, nil, usecaseErrors.ErrTokenInvalid
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check token: %w", err)
		}
		if revoked {
			return nil, nil, usecaseErrors.ErrTokenRevoked
		}
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, nil, usecaseErrors.ErrTokenInvalid
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, claims, nil
}

// Logout revokes the token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.revoked == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
