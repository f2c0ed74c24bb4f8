package repositories

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id int64) (*entities.Meeting, error)

	// LockByID retrieves a meeting and holds a write lock on it until the
	// surrounding transaction ends. Used to serialize work on one meeting.
	LockByID(ctx context.Context, id int64) (*entities.Meeting, error)

	// List retrieves all meetings ordered by ID
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting and everything it owns
	Delete(ctx context.Context, id int64) error
}
