package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// AddParticipant adds a user to a meeting. A user can join a meeting once.
func (s *MeetingService) AddParticipant(ctx context.Context, input AddParticipantInput) (*entities.Participant, error) {
	if input.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", usecaseErrors.ErrInvalidInput)
	}

	if _, err := s.store.Meetings().FindByID(ctx, input.MeetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if _, err := s.store.Users().FindByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Check if participant already exists
	existing, err := s.store.Participants().FindByMeetingAndUser(ctx, input.MeetingID, input.UserID)
	if err != nil && !errors.Is(err, entities.ErrParticipantNotFound) {
		return nil, fmt.Errorf("failed to check participant: %w", err)
	}
	if existing != nil {
		return nil, usecaseErrors.ErrParticipantAlreadyExists
	}

	participant := entities.NewParticipant(input.MeetingID, input.UserID, valueOrZero(input.JoinTime))
	if err := s.store.Participants().Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}
	return participant, nil
}

// ListParticipants retrieves the participants of a meeting ordered by ID
func (s *MeetingService) ListParticipants(ctx context.Context, meetingID int64) ([]*entities.Participant, error) {
	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	participants, err := s.store.Participants().FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// LeaveMeeting records when a participant left. A zero at means now.
func (s *MeetingService) LeaveMeeting(ctx context.Context, participantID int64, at time.Time) (*entities.Participant, error) {
	participant, err := s.store.Participants().FindByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if at.IsZero() {
		at = time.Now().UTC()
	}
	if at.Before(participant.JoinTime) {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidTimeRange)
	}

	if err := s.store.Participants().MarkAsLeft(ctx, participantID, at); err != nil {
		return nil, fmt.Errorf("failed to leave meeting: %w", err)
	}
	participant.Leave(at)
	return participant, nil
}

// RecordVoiceActivity logs a span of speech. The insert and the speaking time
// increment happen in one transaction holding the meeting lock, so a concurrent
// score computation sees either both or neither.
func (s *MeetingService) RecordVoiceActivity(ctx context.Context, input RecordVoiceActivityInput) (*entities.VoiceActivity, error) {
	activity, err := entities.NewVoiceActivity(input.ParticipantID, valueOrZero(input.StartTime), input.EndTime, input.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	err = s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		participant, err := tx.Participants().FindByID(ctx, input.ParticipantID)
		if err != nil {
			return fmt.Errorf("failed to get participant: %w", err)
		}
		if _, err := tx.Meetings().LockByID(ctx, participant.MeetingID); err != nil {
			return fmt.Errorf("failed to lock meeting: %w", err)
		}

		// re-read under the lock so the overflow check sees the current total
		participant, err = tx.Participants().FindByID(ctx, participant.ID)
		if err != nil {
			return fmt.Errorf("failed to get participant: %w", err)
		}
		if !participant.CanAddSpeakingTime(activity.Duration) {
			return fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrSpeakingTimeOverflow)
		}

		if err := tx.Activities().CreateVoiceActivity(ctx, activity); err != nil {
			return fmt.Errorf("failed to create voice activity: %w", err)
		}
		if err := tx.Participants().IncrementSpeakingTime(ctx, participant.ID, activity.Duration); err != nil {
			return fmt.Errorf("failed to update speaking time: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// ListVoiceActivities retrieves a participant's voice activity log
func (s *MeetingService) ListVoiceActivities(ctx context.Context, participantID int64) ([]*entities.VoiceActivity, error) {
	if _, err := s.store.Participants().FindByID(ctx, participantID); err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	activities, err := s.store.Activities().ListVoiceActivities(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice activities: %w", err)
	}
	return activities, nil
}
