package entities

import (
	"strings"
	"time"
)

// Common activity_type tags. The column is free-form; these are the values the
// clients send today.
const (
	DocumentActivityEdit    = "edit"
	DocumentActivityComment = "comment"
	DocumentActivityView    = "view"

	TaskActivityCreate   = "create"
	TaskActivityUpdate   = "update"
	TaskActivityComplete = "complete"
)

// DocumentActivity records a user touching a shared document during a meeting
type DocumentActivity struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID    int64     `gorm:"not null;index:idx_document_activities_meeting_user" json:"meeting_id"`
	UserID       int64     `gorm:"not null;index:idx_document_activities_meeting_user" json:"user_id"`
	DocumentID   string    `gorm:"type:varchar(255);not null" json:"document_id"`
	ActivityType string    `gorm:"type:varchar(50);not null" json:"activity_type"`
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`
}

// TableName specifies the table name for DocumentActivity
func (DocumentActivity) TableName() string {
	return "document_activities"
}

// TaskActivity records a user touching a task during a meeting
type TaskActivity struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID    int64     `gorm:"not null;index:idx_task_activities_meeting_user" json:"meeting_id"`
	UserID       int64     `gorm:"not null;index:idx_task_activities_meeting_user" json:"user_id"`
	TaskID       string    `gorm:"type:varchar(255);not null" json:"task_id"`
	ActivityType string    `gorm:"type:varchar(50);not null" json:"activity_type"`
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`
}

// TableName specifies the table name for TaskActivity
func (TaskActivity) TableName() string {
	return "task_activities"
}

// NewDocumentActivity creates a document activity at ts (now when zero)
func NewDocumentActivity(meetingID, userID int64, documentID, activityType string, ts time.Time) (*DocumentActivity, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, ErrMissingEntityID
	}
	if strings.TrimSpace(activityType) == "" {
		return nil, ErrMissingActivityType
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &DocumentActivity{
		MeetingID:    meetingID,
		UserID:       userID,
		DocumentID:   documentID,
		ActivityType: activityType,
		Timestamp:    ts,
	}, nil
}

// NewTaskActivity creates a task activity at ts (now when zero)
func NewTaskActivity(meetingID, userID int64, taskID, activityType string, ts time.Time) (*TaskActivity, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrMissingEntityID
	}
	if strings.TrimSpace(activityType) == "" {
		return nil, ErrMissingActivityType
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &TaskActivity{
		MeetingID:    meetingID,
		UserID:       userID,
		TaskID:       taskID,
		ActivityType: activityType,
		Timestamp:    ts,
	}, nil
}
