package entities

import (
	"strings"
	"time"
)

// ChatMessage is a message posted to a meeting chat
type ChatMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID int64     `gorm:"not null;index:idx_chat_messages_meeting_user" json:"meeting_id"`
	UserID    int64     `gorm:"not null;index:idx_chat_messages_meeting_user" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// NewChatMessage creates a chat message sent at ts (now when zero)
func NewChatMessage(meetingID, userID int64, content string, ts time.Time) (*ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &ChatMessage{
		MeetingID: meetingID,
		UserID:    userID,
		Content:   content,
		Timestamp: ts,
	}, nil
}
