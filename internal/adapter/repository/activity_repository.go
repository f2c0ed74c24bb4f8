package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// activityRepository implements the ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) repositories.ActivityRepository {
	return &activityRepository{db: db}
}

// CreateVoiceActivity inserts a voice activity row
func (r *activityRepository) CreateVoiceActivity(ctx context.Context, activity *entities.VoiceActivity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create voice activity: %w", err)
	}
	return nil
}

// ListVoiceActivities lists a participant's voice activities
func (r *activityRepository) ListVoiceActivities(ctx context.Context, participantID int64) ([]*entities.VoiceActivity, error) {
	var activities []*entities.VoiceActivity
	if err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("id ASC").
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list voice activities: %w", err)
	}
	return activities, nil
}

// SumVoiceDuration returns the total logged voice duration for a participant
func (r *activityRepository) SumVoiceDuration(ctx context.Context, participantID int64) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.VoiceActivity{}).
		Where("participant_id = ?", participantID).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum voice duration: %w", err)
	}
	return int(total), nil
}

// CreateChatMessage inserts a chat message
func (r *activityRepository) CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

// ListChatMessages lists a meeting's chat messages
func (r *activityRepository) ListChatMessages(ctx context.Context, meetingID int64) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// CountChatMessages counts a user's chat messages in a meeting
func (r *activityRepository) CountChatMessages(ctx context.Context, meetingID, userID int64) (int, error) {
	return r.count(ctx, &entities.ChatMessage{}, meetingID, userID)
}

// CreateDocumentActivity inserts a document activity
func (r *activityRepository) CreateDocumentActivity(ctx context.Context, activity *entities.DocumentActivity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create document activity: %w", err)
	}
	return nil
}

// ListDocumentActivities lists a meeting's document activities
func (r *activityRepository) ListDocumentActivities(ctx context.Context, meetingID int64) ([]*entities.DocumentActivity, error) {
	var activities []*entities.DocumentActivity
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list document activities: %w", err)
	}
	return activities, nil
}

// CountDocumentActivities counts a user's document activities in a meeting
func (r *activityRepository) CountDocumentActivities(ctx context.Context, meetingID, userID int64) (int, error) {
	return r.count(ctx, &entities.DocumentActivity{}, meetingID, userID)
}

// CreateTaskActivity inserts a task activity
func (r *activityRepository) CreateTaskActivity(ctx context.Context, activity *entities.TaskActivity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create task activity: %w", err)
	}
	return nil
}

// ListTaskActivities lists a meeting's task activities
func (r *activityRepository) ListTaskActivities(ctx context.Context, meetingID int64) ([]*entities.TaskActivity, error) {
	var activities []*entities.TaskActivity
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list task activities: %w", err)
	}
	return activities, nil
}

// CountTaskActivities counts a user's task activities in a meeting
func (r *activityRepository) CountTaskActivities(ctx context.Context, meetingID, userID int64) (int, error) {
	return r.count(ctx, &entities.TaskActivity{}, meetingID, userID)
}

func (r *activityRepository) count(ctx context.Context, model interface{}, meetingID, userID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(model).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return int(count), nil
}
