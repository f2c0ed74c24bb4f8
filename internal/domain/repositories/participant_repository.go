package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// Create creates a new participant record.
	// Returns entities.ErrParticipantAlreadyExists for a duplicate (meeting, user) pair.
	Create(ctx context.Context, participant *entities.Participant) error

	// FindByID retrieves a participant by ID
	FindByID(ctx context.Context, id int64) (*entities.Participant, error)

	// FindByMeetingAndUser retrieves a participant by meeting and user ID
	FindByMeetingAndUser(ctx context.Context, meetingID, userID int64) (*entities.Participant, error)

	// FindByMeetingID retrieves all participants in a meeting ordered by ID
	FindByMeetingID(ctx context.Context, meetingID int64) ([]*entities.Participant, error)

	// IncrementSpeakingTime atomically adds seconds to the running speaking total
	IncrementSpeakingTime(ctx context.Context, participantID int64, seconds int) error

	// UpdateScores writes engagement_score and score_breakdown for each participant
	UpdateScores(ctx context.Context, participants []*entities.Participant) error

	// MarkAsLeft sets the leave time
	MarkAsLeft(ctx context.Context, participantID int64, at time.Time) error
}
