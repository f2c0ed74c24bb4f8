package presenter

import (
	engagementDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/engagement"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
)

// ToCalculateEngagementResponse wraps freshly scored participants
func ToCalculateEngagementResponse(participants []*entities.Participant) *engagementDTO.CalculateEngagementResponse {
	return &engagementDTO.CalculateEngagementResponse{
		Message:      "Engagement scores calculated successfully",
		Participants: ToParticipantListResponse(participants),
	}
}

// ToSilentContributorListResponse converts silent contributors, keeping their order
func ToSilentContributorListResponse(contributors []engagement.SilentContributor) []*engagementDTO.SilentContributorResponse {
	out := make([]*engagementDTO.SilentContributorResponse, 0, len(contributors))
	for _, sc := range contributors {
		out = append(out, &engagementDTO.SilentContributorResponse{
			Participant:        ToParticipantResponse(sc.Participant),
			User:               ToUserResponse(sc.User),
			ChatMessages:       sc.ChatMessages,
			DocumentActivities: sc.DocumentActivities,
			TaskActivities:     sc.TaskActivities,
			EngagementScore:    sc.EngagementScore,
		})
	}
	return out
}

// ToReportResponse converts an archived report
func ToReportResponse(r *engagement.ArchivedReport) *engagementDTO.ReportResponse {
	if r == nil {
		return nil
	}

	resp := &engagementDTO.ReportResponse{
		Key:      r.Key,
		Location: r.Location,
		Size:     r.Size,
	}
	if r.Report == nil {
		return resp
	}

	resp.MeetingID = r.Report.MeetingID
	resp.GeneratedAt = formatTime(r.Report.GeneratedAt)
	resp.Participants = make([]*engagementDTO.ReportEntryResponse, 0, len(r.Report.Participants))
	for _, e := range r.Report.Participants {
		resp.Participants = append(resp.Participants, &engagementDTO.ReportEntryResponse{
			ParticipantID:   e.ParticipantID,
			UserID:          e.UserID,
			SpeakingTime:    e.SpeakingTime,
			EngagementScore: e.EngagementScore,
			ScoreBreakdown:  e.Breakdown,
		})
	}
	return resp
}

// ToStoredReportListResponse converts archive listings
func ToStoredReportListResponse(reports []engagement.StoredReport) []*engagementDTO.StoredReportResponse {
	out := make([]*engagementDTO.StoredReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, &engagementDTO.StoredReportResponse{
			Key:          r.Key,
			Size:         r.Size,
			LastModified: formatTime(r.LastModified),
			Location:     r.Location,
		})
	}
	return out
}
