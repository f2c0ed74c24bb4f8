package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Participant represents a user's participation in a meeting.
// SpeakingTime is the running total of recorded voice activity in seconds and
// is only ever increased by the voice activity insert path.
type Participant struct {
	ID              int64                              `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID       int64                              `gorm:"not null;uniqueIndex:idx_participants_meeting_user" json:"meeting_id"`
	UserID          int64                              `gorm:"not null;uniqueIndex:idx_participants_meeting_user;index" json:"user_id"`
	JoinTime        time.Time                          `gorm:"not null" json:"join_time"`
	LeaveTime       *time.Time                         `json:"leave_time"`
	SpeakingTime    int                                `gorm:"not null;default:0" json:"speaking_time"` // seconds
	EngagementScore float64                            `gorm:"not null;default:0" json:"engagement_score"`
	ScoreBreakdown  datatypes.JSONType[ScoreBreakdown] `gorm:"type:jsonb" json:"score_breakdown"`
	CreatedAt       time.Time                          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                          `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a participant joining at joinTime (now when zero)
func NewParticipant(meetingID, userID int64, joinTime time.Time) *Participant {
	if joinTime.IsZero() {
		joinTime = time.Now().UTC()
	}
	return &Participant{
		MeetingID: meetingID,
		UserID:    userID,
		JoinTime:  joinTime,
	}
}

// AddSpeakingTime increases the running speaking total
func (p *Participant) AddSpeakingTime(seconds int) {
	p.SpeakingTime += seconds
}

// CanAddSpeakingTime reports whether seconds fits on top of the current total
func (p *Participant) CanAddSpeakingTime(seconds int) bool {
	return seconds <= MaxSeconds-p.SpeakingTime
}

// ApplyScore stores a freshly computed score and its breakdown
func (p *Participant) ApplyScore(b ScoreBreakdown) {
	p.EngagementScore = b.Score
	p.ScoreBreakdown = datatypes.NewJSONType(b)
}

// IsSilent reports whether the participant spoke for less than threshold seconds
func (p *Participant) IsSilent(threshold int) bool {
	return p.SpeakingTime < threshold
}

// Leave records the leave time
func (p *Participant) Leave(at time.Time) {
	p.LeaveTime = &at
}
