package meeting

import (
	"context"
	"fmt"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// checkMeetingAndUser resolves the references shared by chat, document and task rows
func (s *MeetingService) checkMeetingAndUser(ctx context.Context, meetingID, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user_id is required", usecaseErrors.ErrInvalidInput)
	}
	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to get meeting: %w", err)
	}
	if _, err := s.store.Users().FindByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	return nil
}

// AddChatMessage posts a chat message to a meeting
func (s *MeetingService) AddChatMessage(ctx context.Context, input AddChatMessageInput) (*entities.ChatMessage, error) {
	message, err := entities.NewChatMessage(input.MeetingID, input.UserID, input.Content, valueOrZero(input.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}
	if err := s.checkMeetingAndUser(ctx, input.MeetingID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.store.Activities().CreateChatMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return message, nil
}

// ListChatMessages retrieves a meeting's chat messages
func (s *MeetingService) ListChatMessages(ctx context.Context, meetingID int64) ([]*entities.ChatMessage, error) {
	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	messages, err := s.store.Activities().ListChatMessages(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// AddDocumentActivity records a document activity in a meeting
func (s *MeetingService) AddDocumentActivity(ctx context.Context, input AddWorkActivityInput) (*entities.DocumentActivity, error) {
	activity, err := entities.NewDocumentActivity(input.MeetingID, input.UserID, input.EntityID, input.ActivityType, valueOrZero(input.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}
	if err := s.checkMeetingAndUser(ctx, input.MeetingID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.store.Activities().CreateDocumentActivity(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create document activity: %w", err)
	}
	return activity, nil
}

// ListDocumentActivities retrieves a meeting's document activities
func (s *MeetingService) ListDocumentActivities(ctx context.Context, meetingID int64) ([]*entities.DocumentActivity, error) {
	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	activities, err := s.store.Activities().ListDocumentActivities(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list document activities: %w", err)
	}
	return activities, nil
}

// AddTaskActivity records a task activity in a meeting
func (s *MeetingService) AddTaskActivity(ctx context.Context, input AddWorkActivityInput) (*entities.TaskActivity, error) {
	activity, err := entities.NewTaskActivity(input.MeetingID, input.UserID, input.EntityID, input.ActivityType, valueOrZero(input.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}
	if err := s.checkMeetingAndUser(ctx, input.MeetingID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.store.Activities().CreateTaskActivity(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create task activity: %w", err)
	}
	return activity, nil
}

// ListTaskActivities retrieves a meeting's task activities
func (s *MeetingService) ListTaskActivities(ctx context.Context, meetingID int64) ([]*entities.TaskActivity, error) {
	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	activities, err := s.store.Activities().ListTaskActivities(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task activities: %w", err)
	}
	return activities, nil
}
