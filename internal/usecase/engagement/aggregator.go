package engagement

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// ParticipantActivity pairs a participant with its raw activity counts.
// ActivityCounts.SpeakingSeconds is the participant's maintained speaking_time;
// LoggedSpeakingSeconds is the sum over its voice activity log.
type ParticipantActivity struct {
	Participant *entities.Participant
	ActivityCounts
	LoggedSpeakingSeconds int
}

// Aggregator collects per-participant activity counts for a meeting
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator creates a new aggregator
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// Aggregate returns the activity counts of every participant in the meeting,
// ordered by participant ID. It does not write anything.
func (a *Aggregator) Aggregate(ctx context.Context, store repositories.Store, meetingID int64) ([]ParticipantActivity, error) {
	if _, err := store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	participants, err := store.Participants().FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	result := make([]ParticipantActivity, 0, len(participants))
	for _, p := range participants {
		counts, err := a.countActivities(ctx, store, p)
		if err != nil {
			return nil, err
		}

		logged, err := store.Activities().SumVoiceDuration(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum voice activity for participant %d: %w", p.ID, err)
		}
		if logged != p.SpeakingTime {
			a.logger.Warn("speaking time diverges from voice activity log",
				zap.Int64("meeting_id", meetingID),
				zap.Int64("participant_id", p.ID),
				zap.Int("speaking_time", p.SpeakingTime),
				zap.Int("logged_seconds", logged),
			)
		}

		result = append(result, ParticipantActivity{
			Participant:           p,
			ActivityCounts:        counts,
			LoggedSpeakingSeconds: logged,
		})
	}
	return result, nil
}

// countActivities gathers the counts for one participant. Chat, document and
// task rows are matched on (meeting, user).
func (a *Aggregator) countActivities(ctx context.Context, store repositories.Store, p *entities.Participant) (ActivityCounts, error) {
	activities := store.Activities()

	chats, err := activities.CountChatMessages(ctx, p.MeetingID, p.UserID)
	if err != nil {
		return ActivityCounts{}, fmt.Errorf("failed to count chat messages for participant %d: %w", p.ID, err)
	}
	docs, err := activities.CountDocumentActivities(ctx, p.MeetingID, p.UserID)
	if err != nil {
		return ActivityCounts{}, fmt.Errorf("failed to count document activities for participant %d: %w", p.ID, err)
	}
	tasks, err := activities.CountTaskActivities(ctx, p.MeetingID, p.UserID)
	if err != nil {
		return ActivityCounts{}, fmt.Errorf("failed to count task activities for participant %d: %w", p.ID, err)
	}

	return ActivityCounts{
		SpeakingSeconds:    p.SpeakingTime,
		ChatMessages:       chats,
		DocumentActivities: docs,
		TaskActivities:     tasks,
	}, nil
}
