package repositories

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int64) (*entities.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
