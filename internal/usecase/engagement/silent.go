package engagement

import (
	"context"
	"fmt"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// DefaultSilentThreshold is the speaking time, in seconds, below which a
// participant counts as a silent contributor
const DefaultSilentThreshold = 60

// SilentContributor is a participant who spoke less than the threshold,
// together with the rest of their activity
type SilentContributor struct {
	Participant        *entities.Participant
	User               *entities.User
	ChatMessages       int
	DocumentActivities int
	TaskActivities     int
	// EngagementScore is the last computed score and may be stale
	EngagementScore float64
}

// ListSilentContributors returns the participants whose maintained speaking
// time is strictly below thresholdSeconds, ordered by participant ID.
// A participant whose user no longer exists fails the whole listing.
func (s *engagementService) ListSilentContributors(ctx context.Context, meetingID int64, thresholdSeconds int) ([]SilentContributor, error) {
	if thresholdSeconds < 0 {
		return nil, fmt.Errorf("%w: threshold must not be negative", usecaseErrors.ErrInvalidInput)
	}

	if _, err := s.store.Meetings().FindByID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	participants, err := s.store.Participants().FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	silent := make([]SilentContributor, 0)
	for _, p := range participants {
		if !p.IsSilent(thresholdSeconds) {
			continue
		}

		user, err := s.store.Users().FindByID(ctx, p.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user %d of participant %d: %w", p.UserID, p.ID, err)
		}

		counts, err := s.aggregator.countActivities(ctx, s.store, p)
		if err != nil {
			return nil, err
		}

		silent = append(silent, SilentContributor{
			Participant:        p,
			User:               user,
			ChatMessages:       counts.ChatMessages,
			DocumentActivities: counts.DocumentActivities,
			TaskActivities:     counts.TaskActivities,
			EngagementScore:    p.EngagementScore,
		})
	}
	return silent, nil
}
