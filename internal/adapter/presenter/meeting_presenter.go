package presenter

import (
	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meetingDTO.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		StartTime:   formatTime(m.StartTime),
		EndTime:     formatOptionalTime(m.EndTime),
		Description: m.Description,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

// ToMeetingListResponse converts a list of meetings
func ToMeetingListResponse(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToParticipantResponse converts a Participant entity to ParticipantResponse DTO
func ToParticipantResponse(p *entities.Participant) *meetingDTO.ParticipantResponse {
	if p == nil {
		return nil
	}

	return &meetingDTO.ParticipantResponse{
		ID:              p.ID,
		MeetingID:       p.MeetingID,
		UserID:          p.UserID,
		JoinTime:        formatTime(p.JoinTime),
		LeaveTime:       formatOptionalTime(p.LeaveTime),
		SpeakingTime:    p.SpeakingTime,
		EngagementScore: p.EngagementScore,
		ScoreBreakdown:  p.ScoreBreakdown.Data(),
	}
}

// ToParticipantListResponse converts a list of participants
func ToParticipantListResponse(participants []*entities.Participant) []*meetingDTO.ParticipantResponse {
	out := make([]*meetingDTO.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, ToParticipantResponse(p))
	}
	return out
}
