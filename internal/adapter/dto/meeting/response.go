package meeting

import "github.com/johnquangdev/engagement-tracker/internal/domain/entities"

// Timestamps are RFC 3339 in UTC; absent optional timestamps are null.

// MeetingResponse represents a meeting
type MeetingResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ParticipantResponse represents a participant with its last computed score
type ParticipantResponse struct {
	ID              int64                   `json:"id"`
	MeetingID       int64                   `json:"meeting_id"`
	UserID          int64                   `json:"user_id"`
	JoinTime        string                  `json:"join_time"`
	LeaveTime       *string                 `json:"leave_time"`
	SpeakingTime    int                     `json:"speaking_time"`
	EngagementScore float64                 `json:"engagement_score"`
	ScoreBreakdown  entities.ScoreBreakdown `json:"score_breakdown"`
}

// VoiceActivityResponse represents a span of speech
type VoiceActivityResponse struct {
	ID            int64   `json:"id"`
	ParticipantID int64   `json:"participant_id"`
	StartTime     string  `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Duration      int     `json:"duration"`
}

// ChatMessageResponse represents a chat message
type ChatMessageResponse struct {
	ID        int64  `json:"id"`
	MeetingID int64  `json:"meeting_id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// DocumentActivityResponse represents a document activity
type DocumentActivityResponse struct {
	ID           int64  `json:"id"`
	MeetingID    int64  `json:"meeting_id"`
	UserID       int64  `json:"user_id"`
	DocumentID   string `json:"document_id"`
	ActivityType string `json:"activity_type"`
	Timestamp    string `json:"timestamp"`
}

// TaskActivityResponse represents a task activity
type TaskActivityResponse struct {
	ID           int64  `json:"id"`
	MeetingID    int64  `json:"meeting_id"`
	UserID       int64  `json:"user_id"`
	TaskID       string `json:"task_id"`
	ActivityType string `json:"activity_type"`
	Timestamp    string `json:"timestamp"`
}
