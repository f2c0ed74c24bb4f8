package entities

import (
	"math"
	"time"
)

// MaxSeconds is the largest duration the integer columns can hold
const MaxSeconds = math.MaxInt32

// VoiceActivity is one span of speech by a participant
type VoiceActivity struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParticipantID int64      `gorm:"not null;index" json:"participant_id"`
	StartTime     time.Time  `gorm:"not null" json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Duration      int        `gorm:"not null;default:0" json:"duration"` // seconds
}

// TableName specifies the table name for VoiceActivity
func (VoiceActivity) TableName() string {
	return "voice_activities"
}

// NewVoiceActivity builds a voice activity. When duration is nil and an end
// time is known, the duration is derived from the span in whole seconds.
func NewVoiceActivity(participantID int64, start time.Time, end *time.Time, duration *int) (*VoiceActivity, error) {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	if end != nil && end.Before(start) {
		return nil, ErrInvalidTimeRange
	}

	seconds := 0
	switch {
	case duration != nil:
		seconds = *duration
	case end != nil:
		seconds = int(end.Sub(start).Seconds())
	}
	if seconds < 0 || seconds > MaxSeconds {
		return nil, ErrInvalidDuration
	}

	return &VoiceActivity{
		ParticipantID: participantID,
		StartTime:     start,
		EndTime:       end,
		Duration:      seconds,
	}, nil
}
