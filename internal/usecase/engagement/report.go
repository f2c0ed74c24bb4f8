package engagement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// ReportArchiver stores serialized reports
type ReportArchiver interface {
	// PutReport writes body under key and returns a download location
	PutReport(ctx context.Context, key string, body []byte) (string, error)

	// ListReports lists the stored reports whose key starts with prefix
	ListReports(ctx context.Context, prefix string) ([]StoredReport, error)
}

// StoredReport describes a report already present in the archive
type StoredReport struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	Location     string    `json:"location"`
}

// Report is the archived snapshot of a meeting's engagement scores
type Report struct {
	MeetingID    int64         `json:"meeting_id"`
	Title        string        `json:"title"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Participants []ReportEntry `json:"participants"`
}

// ReportEntry is one participant's line in a Report
type ReportEntry struct {
	ParticipantID   int64                   `json:"participant_id"`
	UserID          int64                   `json:"user_id"`
	SpeakingTime    int                     `json:"speaking_time"`
	EngagementScore float64                 `json:"engagement_score"`
	Breakdown       entities.ScoreBreakdown `json:"score_breakdown"`
}

// ArchivedReport describes a report written by ArchiveReport
type ArchivedReport struct {
	Key      string  `json:"key"`
	Location string  `json:"location"`
	Size     int     `json:"size"`
	Report   *Report `json:"report"`
}

// ArchiveReport writes the meeting's current scores, as last computed, to the
// report archive. Scores are not recomputed.
func (s *engagementService) ArchiveReport(ctx context.Context, meetingID int64) (*ArchivedReport, error) {
	if s.archiver == nil {
		return nil, usecaseErrors.ErrReportStorageDisabled
	}

	meeting, err := s.store.Meetings().FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	participants, err := s.store.Participants().FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	report := &Report{
		MeetingID:    meeting.ID,
		Title:        meeting.Title,
		GeneratedAt:  s.now(),
		Participants: make([]ReportEntry, 0, len(participants)),
	}
	for _, p := range participants {
		report.Participants = append(report.Participants, ReportEntry{
			ParticipantID:   p.ID,
			UserID:          p.UserID,
			SpeakingTime:    p.SpeakingTime,
			EngagementScore: p.EngagementScore,
			Breakdown:       p.ScoreBreakdown.Data(),
		})
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	key := ReportKey(meetingID, report.GeneratedAt)
	location, err := s.archiver.PutReport(ctx, key, body)
	if err != nil {
		return nil, fmt.Errorf("failed to archive report: %w", err)
	}

	return &ArchivedReport{
		Key:      key,
		Location: location,
		Size:     len(body),
		Report:   report,
	}, nil
}

// ListReports lists the archived reports of a meeting
func (s *engagementService) ListReports(ctx context.Context, meetingID int64) ([]StoredReport, error) {
	if s.archiver == nil {
		return nil, usecaseErrors.ErrReportStorageDisabled
	}

	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	reports, err := s.archiver.ListReports(ctx, reportPrefix(meetingID))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []StoredReport{}
	}
	return reports, nil
}

func reportPrefix(meetingID int64) string {
	return fmt.Sprintf("meetings/%d/", meetingID)
}

// ReportKey is the object key of a meeting report generated at t. Keys carry
// nanoseconds at a fixed width so they stay distinct and sort chronologically.
func ReportKey(meetingID int64, t time.Time) string {
	return reportPrefix(meetingID) + "engagement-" + t.UTC().Format("20060102T150405.000000000Z") + ".json"
}
