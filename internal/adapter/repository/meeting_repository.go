package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// LockByID retrieves a meeting with SELECT ... FOR UPDATE.
// Only meaningful inside a transaction.
func (r *meetingRepository) LockByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *meetingRepository) find(db *gorm.DB, id int64) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := db.Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return &meeting, nil
}

// List retrieves all meetings ordered by ID
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Save(meeting).Error; err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}
	return nil
}

// Delete deletes a meeting; owned rows go with it through ON DELETE CASCADE
func (r *meetingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Meeting{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
