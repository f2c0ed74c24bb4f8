package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// Create creates a new participant record
func (r *participantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrParticipantAlreadyExists
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

// FindByID retrieves a participant by ID
func (r *participantRepository) FindByID(ctx context.Context, id int64) (*entities.Participant, error) {
	var participant entities.Participant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&participant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return &participant, nil
}

// FindByMeetingAndUser retrieves a participant by meeting and user ID
func (r *participantRepository) FindByMeetingAndUser(ctx context.Context, meetingID, userID int64) (*entities.Participant, error) {
	var participant entities.Participant
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		First(&participant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return &participant, nil
}

// FindByMeetingID retrieves all participants in a meeting in insertion order
func (r *participantRepository) FindByMeetingID(ctx context.Context, meetingID int64) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// IncrementSpeakingTime adds seconds to speaking_time in a single UPDATE so
// concurrent increments cannot be lost
func (r *participantRepository) IncrementSpeakingTime(ctx context.Context, participantID int64, seconds int) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Where("id = ?", participantID).
		UpdateColumns(map[string]interface{}{
			"speaking_time": gorm.Expr("speaking_time + ?", seconds),
			"updated_at":    r.db.NowFunc(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment speaking time: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrParticipantNotFound
	}
	return nil
}

// UpdateScores writes the computed scores for each participant
func (r *participantRepository) UpdateScores(ctx context.Context, participants []*entities.Participant) error {
	for _, p := range participants {
		err := r.db.WithContext(ctx).
			Model(&entities.Participant{}).
			Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"engagement_score": p.EngagementScore,
				"score_breakdown":  p.ScoreBreakdown,
			}).
			Error
		if err != nil {
			return fmt.Errorf("failed to update score for participant %d: %w", p.ID, err)
		}
	}
	return nil
}

// MarkAsLeft sets the participant's leave time
func (r *participantRepository) MarkAsLeft(ctx context.Context, participantID int64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Where("id = ?", participantID).
		Update("leave_time", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark participant as left: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrParticipantNotFound
	}
	return nil
}
