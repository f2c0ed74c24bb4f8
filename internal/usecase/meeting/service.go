package meeting

import (
	"context"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// Service defines the interface for the meeting use case: meetings,
// participants and the activity logs feeding the engagement score
type Service interface {
	// CreateMeeting creates a new meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, meetingID int64) (*entities.Meeting, error)

	// ListMeetings retrieves every meeting
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// UpdateMeeting applies the fields set in input
	UpdateMeeting(ctx context.Context, meetingID int64, input UpdateMeetingInput) (*entities.Meeting, error)

	// DeleteMeeting deletes a meeting and everything it owns
	DeleteMeeting(ctx context.Context, meetingID int64) error

	// AddParticipant adds a user to a meeting
	AddParticipant(ctx context.Context, input AddParticipantInput) (*entities.Participant, error)

	// ListParticipants retrieves the participants of a meeting
	ListParticipants(ctx context.Context, meetingID int64) ([]*entities.Participant, error)

	// LeaveMeeting records when a participant left
	LeaveMeeting(ctx context.Context, participantID int64, at time.Time) (*entities.Participant, error)

	// RecordVoiceActivity logs a span of speech and adds it to the participant's speaking time
	RecordVoiceActivity(ctx context.Context, input RecordVoiceActivityInput) (*entities.VoiceActivity, error)

	// ListVoiceActivities retrieves a participant's voice activity log
	ListVoiceActivities(ctx context.Context, participantID int64) ([]*entities.VoiceActivity, error)

	// AddChatMessage posts a chat message to a meeting
	AddChatMessage(ctx context.Context, input AddChatMessageInput) (*entities.ChatMessage, error)

	// ListChatMessages retrieves a meeting's chat messages
	ListChatMessages(ctx context.Context, meetingID int64) ([]*entities.ChatMessage, error)

	// AddDocumentActivity records a document activity in a meeting
	AddDocumentActivity(ctx context.Context, input AddWorkActivityInput) (*entities.DocumentActivity, error)

	// ListDocumentActivities retrieves a meeting's document activities
	ListDocumentActivities(ctx context.Context, meetingID int64) ([]*entities.DocumentActivity, error)

	// AddTaskActivity records a task activity in a meeting
	AddTaskActivity(ctx context.Context, input AddWorkActivityInput) (*entities.TaskActivity, error)

	// ListTaskActivities retrieves a meeting's task activities
	ListTaskActivities(ctx context.Context, meetingID int64) ([]*entities.TaskActivity, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// MeetingService handles meeting business logic
type MeetingService struct {
	store repositories.Store
}

// NewMeetingService creates a new meeting service
func NewMeetingService(store repositories.Store) *MeetingService {
	return &MeetingService{store: store}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title       string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
}

// UpdateMeetingInput represents a partial meeting update; nil fields are left unchanged
type UpdateMeetingInput struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// AddParticipantInput represents input for adding a participant
type AddParticipantInput struct {
	MeetingID int64
	UserID    int64
	JoinTime  *time.Time
}

// RecordVoiceActivityInput represents one span of speech.
// Duration is in seconds; when nil it is derived from EndTime.
type RecordVoiceActivityInput struct {
	ParticipantID int64
	StartTime     *time.Time
	EndTime       *time.Time
	Duration      *int
}

// AddChatMessageInput represents input for posting a chat message
type AddChatMessageInput struct {
	MeetingID int64
	UserID    int64
	Content   string
	Timestamp *time.Time
}

// AddWorkActivityInput represents a document or task activity.
// EntityID is the document ID or the task ID.
type AddWorkActivityInput struct {
	MeetingID    int64
	UserID       int64
	EntityID     string
	ActivityType string
	Timestamp    *time.Time
}

func valueOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
