package meeting

import "time"

// CreateMeetingRequest represents the request to create a meeting.
// start_time defaults to now.
type CreateMeetingRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=255"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// UpdateMeetingRequest represents a partial meeting update
type UpdateMeetingRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// AddParticipantRequest represents the request to add a user to a meeting
type AddParticipantRequest struct {
	UserID   int64      `json:"user_id" validate:"required,gt=0"`
	JoinTime *time.Time `json:"join_time,omitempty"`
}

// LeaveMeetingRequest represents the request to record a participant leaving
type LeaveMeetingRequest struct {
	LeaveTime *time.Time `json:"leave_time,omitempty"`
}

// RecordVoiceActivityRequest represents one span of speech. When duration is
// omitted it is derived from end_time - start_time.
type RecordVoiceActivityRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  *int       `json:"duration,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}

// AddChatMessageRequest represents a chat message. user_id defaults to the
// authenticated caller.
type AddChatMessageRequest struct {
	UserID    *int64     `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	Content   string     `json:"content" validate:"required,notblank"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// AddDocumentActivityRequest represents a document activity
type AddDocumentActivityRequest struct {
	UserID       *int64     `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	DocumentID   string     `json:"document_id" validate:"required,notblank,max=255"`
	ActivityType string     `json:"activity_type" validate:"required,notblank,max=50"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// AddTaskActivityRequest represents a task activity
type AddTaskActivityRequest struct {
	UserID       *int64     `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	TaskID       string     `json:"task_id" validate:"required,notblank,max=255"`
	ActivityType string     `json:"activity_type" validate:"required,notblank,max=50"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}
