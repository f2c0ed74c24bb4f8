package engagement

import (
	authDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/auth"
	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// CalculateEngagementResponse is returned after scores are recomputed
type CalculateEngagementResponse struct {
	Message      string                            `json:"message"`
	Participants []*meetingDTO.ParticipantResponse `json:"participants"`
}

// SilentContributorResponse is one silent contributor with their activity
type SilentContributorResponse struct {
	Participant        *meetingDTO.ParticipantResponse `json:"participant"`
	User               *authDTO.UserResponse           `json:"user"`
	ChatMessages       int                             `json:"chat_messages"`
	DocumentActivities int                             `json:"document_activities"`
	TaskActivities     int                             `json:"task_activities"`
	EngagementScore    float64                         `json:"engagement_score"`
}

// ReportEntryResponse is one participant line of an archived report
type ReportEntryResponse struct {
	ParticipantID   int64                   `json:"participant_id"`
	UserID          int64                   `json:"user_id"`
	SpeakingTime    int                     `json:"speaking_time"`
	EngagementScore float64                 `json:"engagement_score"`
	ScoreBreakdown  entities.ScoreBreakdown `json:"score_breakdown"`
}

// ReportResponse describes an archived engagement report
type ReportResponse struct {
	Key          string                 `json:"key"`
	Location     string                 `json:"location"`
	Size         int                    `json:"size"`
	MeetingID    int64                  `json:"meeting_id"`
	GeneratedAt  string                 `json:"generated_at"`
	Participants []*ReportEntryResponse `json:"participants"`
}

// StoredReportResponse is a report already present in the archive
type StoredReportResponse struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
	Location     string `json:"location"`
}
