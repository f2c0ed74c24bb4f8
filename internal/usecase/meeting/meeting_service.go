package meeting

import (
	"context"
	"fmt"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// CreateMeeting creates a new meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(input.Title, input.Description, valueOrZero(input.StartTime), input.EndTime)
	if err := meeting.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	if err := s.store.Meetings().Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID int64) (*entities.Meeting, error) {
	meeting, err := s.store.Meetings().FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves every meeting
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.store.Meetings().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// UpdateMeeting applies the fields set in input
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID int64, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.store.Meetings().FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if input.Title != nil {
		meeting.Title = *input.Title
	}
	if input.Description != nil {
		meeting.Description = *input.Description
	}
	if input.StartTime != nil {
		meeting.StartTime = input.StartTime.UTC()
	}
	if input.EndTime != nil {
		end := input.EndTime.UTC()
		meeting.EndTime = &end
	}

	if err := meeting.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	if err := s.store.Meetings().Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting deletes a meeting and everything it owns
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID int64) error {
	if err := s.store.Meetings().Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
