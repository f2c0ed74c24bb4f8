package repositories

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// ActivityRepository defines the interface for the append-only activity logs
type ActivityRepository interface {
	// Voice activity
	CreateVoiceActivity(ctx context.Context, activity *entities.VoiceActivity) error
	ListVoiceActivities(ctx context.Context, participantID int64) ([]*entities.VoiceActivity, error)
	SumVoiceDuration(ctx context.Context, participantID int64) (int, error)

	// Chat
	CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error
	ListChatMessages(ctx context.Context, meetingID int64) ([]*entities.ChatMessage, error)
	CountChatMessages(ctx context.Context, meetingID, userID int64) (int, error)

	// Documents
	CreateDocumentActivity(ctx context.Context, activity *entities.DocumentActivity) error
	ListDocumentActivities(ctx context.Context, meetingID int64) ([]*entities.DocumentActivity, error)
	CountDocumentActivities(ctx context.Context, meetingID, userID int64) (int, error)

	// Tasks
	CreateTaskActivity(ctx context.Context, activity *entities.TaskActivity) error
	ListTaskActivities(ctx context.Context, meetingID int64) ([]*entities.TaskActivity, error)
	CountTaskActivities(ctx context.Context, meetingID, userID int64) (int, error)
}
