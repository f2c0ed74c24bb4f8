package engagement

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// Service defines the interface for the engagement use case
type Service interface {
	// ComputeEngagement scores every participant of a meeting and persists the
	// scores atomically
	ComputeEngagement(ctx context.Context, meetingID int64) ([]*entities.Participant, error)

	// ListSilentContributors lists participants whose speaking time is below thresholdSeconds
	ListSilentContributors(ctx context.Context, meetingID int64, thresholdSeconds int) ([]SilentContributor, error)

	// ArchiveReport snapshots the current scores of a meeting into object storage
	ArchiveReport(ctx context.Context, meetingID int64) (*ArchivedReport, error)

	// ListReports lists the archived reports of a meeting
	ListReports(ctx context.Context, meetingID int64) ([]StoredReport, error)
}

// ParticipantScore is one entry of a ComputedEvent
type ParticipantScore struct {
	ParticipantID   int64   `json:"participant_id"`
	UserID          int64   `json:"user_id"`
	EngagementScore float64 `json:"engagement_score"`
}

// ComputedEvent is published after scores have been committed
type ComputedEvent struct {
	MeetingID  int64              `json:"meeting_id"`
	ComputedAt time.Time          `json:"computed_at"`
	Scores     []ParticipantScore `json:"scores"`
}

// EventPublisher delivers engagement events to interested consumers
type EventPublisher interface {
	PublishEngagementComputed(ctx context.Context, event ComputedEvent) error
}

// engagementService implements Service
type engagementService struct {
	store      repositories.Store
	aggregator *Aggregator
	publisher  EventPublisher
	archiver   ReportArchiver
	logger     *zap.Logger
	now        func() time.Time
}

var _ Service = (*engagementService)(nil)

// NewService creates a new engagement service. publisher and archiver are
// optional; without an archiver ArchiveReport fails with ErrReportStorageDisabled.
func NewService(
	store repositories.Store,
	publisher EventPublisher,
	archiver ReportArchiver,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &engagementService{
		store:      store,
		aggregator: NewAggregator(logger),
		publisher:  publisher,
		archiver:   archiver,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ComputeEngagement locks the meeting, aggregates activity, scores each
// participant and writes all scores in one transaction
func (s *engagementService) ComputeEngagement(ctx context.Context, meetingID int64) ([]*entities.Participant, error) {
	var scored []*entities.Participant

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Meetings().LockByID(ctx, meetingID); err != nil {
			return fmt.Errorf("failed to lock meeting: %w", err)
		}

		activities, err := s.aggregator.Aggregate(ctx, tx, meetingID)
		if err != nil {
			return err
		}

		scored = make([]*entities.Participant, 0, len(activities))
		for _, a := range activities {
			a.Participant.ApplyScore(Score(a.ActivityCounts))
			scored = append(scored, a.Participant)
		}

		if err := tx.Participants().UpdateScores(ctx, scored); err != nil {
			return fmt.Errorf("failed to save scores: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishComputed(ctx, meetingID, scored)
	return scored, nil
}

// publishComputed is best effort: the scores are already committed
func (s *engagementService) publishComputed(ctx context.Context, meetingID int64, participants []*entities.Participant) {
	if s.publisher == nil {
		return
	}

	event := ComputedEvent{
		MeetingID:  meetingID,
		ComputedAt: s.now(),
		Scores:     make([]ParticipantScore, 0, len(participants)),
	}
	for _, p := range participants {
		event.Scores = append(event.Scores, ParticipantScore{
			ParticipantID:   p.ID,
			UserID:          p.UserID,
			EngagementScore: p.EngagementScore,
		})
	}

	if err := s.publisher.PublishEngagementComputed(ctx, event); err != nil {
		s.logger.Warn("failed to publish engagement event",
			zap.Int64("meeting_id", meetingID),
			zap.Error(err),
		)
	}
}
