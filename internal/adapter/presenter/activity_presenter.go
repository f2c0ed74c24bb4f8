package presenter

import (
	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

func ToVoiceActivityResponse(a *entities.VoiceActivity) *meetingDTO.VoiceActivityResponse {
	return &meetingDTO.VoiceActivityResponse{
		ID:            a.ID,
		ParticipantID: a.ParticipantID,
		StartTime:     formatTime(a.StartTime),
		EndTime:       formatOptionalTime(a.EndTime),
		Duration:      a.Duration,
	}
}

func ToVoiceActivityListResponse(activities []*entities.VoiceActivity) []*meetingDTO.VoiceActivityResponse {
	out := make([]*meetingDTO.VoiceActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToVoiceActivityResponse(a))
	}
	return out
}

func ToChatMessageResponse(m *entities.ChatMessage) *meetingDTO.ChatMessageResponse {
	return &meetingDTO.ChatMessageResponse{
		ID:        m.ID,
		MeetingID: m.MeetingID,
		UserID:    m.UserID,
		Content:   m.Content,
		Timestamp: formatTime(m.Timestamp),
	}
}

func ToChatMessageListResponse(messages []*entities.ChatMessage) []*meetingDTO.ChatMessageResponse {
	out := make([]*meetingDTO.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToChatMessageResponse(m))
	}
	return out
}

func ToDocumentActivityResponse(a *entities.DocumentActivity) *meetingDTO.DocumentActivityResponse {
	return &meetingDTO.DocumentActivityResponse{
		ID:           a.ID,
		MeetingID:    a.MeetingID,
		UserID:       a.UserID,
		DocumentID:   a.DocumentID,
		ActivityType: a.ActivityType,
		Timestamp:    formatTime(a.Timestamp),
	}
}

func ToDocumentActivityListResponse(activities []*entities.DocumentActivity) []*meetingDTO.DocumentActivityResponse {
	out := make([]*meetingDTO.DocumentActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToDocumentActivityResponse(a))
	}
	return out
}

func ToTaskActivityResponse(a *entities.TaskActivity) *meetingDTO.TaskActivityResponse {
	return &meetingDTO.TaskActivityResponse{
		ID:           a.ID,
		MeetingID:    a.MeetingID,
		UserID:       a.UserID,
		TaskID:       a.TaskID,
		ActivityType: a.ActivityType,
		Timestamp:    formatTime(a.Timestamp),
	}
}

func ToTaskActivityListResponse(activities []*entities.TaskActivity) []*meetingDTO.TaskActivityResponse {
	out := make([]*meetingDTO.TaskActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToTaskActivityResponse(a))
	}
	return out
}
