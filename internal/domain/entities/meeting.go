package entities

import (
	"strings"
	"time"
)

// Meeting represents a tracked meeting. Deleting a meeting cascades to its
// participants, voice activities, chat messages, document and task activities.
type Meeting struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	StartTime   time.Time  `gorm:"not null" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting starting at start (now when zero)
func NewMeeting(title, description string, start time.Time, end *time.Time) *Meeting {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &Meeting{
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}
}

// Validate validates meeting data
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if m.EndTime != nil && m.EndTime.Before(m.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
