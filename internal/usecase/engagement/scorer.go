package engagement

import (
	"math"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// Scoring weights. Each component is capped before the components are summed.
const (
	SecondsPerVoicePoint      = 60.0
	MaxVoiceScore             = 10.0
	PointsPerChatMessage      = 2.0
	MaxChatScore              = 10.0
	PointsPerDocumentActivity = 2.0
	MaxDocumentScore          = 5.0
	PointsPerTaskActivity     = 3.0
	MaxTaskScore              = 5.0

	// MaxRawScore is the best possible sum of the capped components
	MaxRawScore = MaxVoiceScore + MaxChatScore + MaxDocumentScore + MaxTaskScore

	// MaxEngagementScore is the top of the normalized scale
	MaxEngagementScore = 100.0
)

// ActivityCounts are the raw per-participant inputs to Score
type ActivityCounts struct {
	SpeakingSeconds    int `json:"speaking_seconds"`
	ChatMessages       int `json:"chat_messages"`
	DocumentActivities int `json:"document_activities"`
	TaskActivities     int `json:"task_activities"`
}

// Score converts raw activity counts into a normalized 0-100 engagement score.
// It is a pure function: equal inputs always give equal outputs.
func Score(c ActivityCounts) entities.ScoreBreakdown {
	b := entities.ScoreBreakdown{
		VoiceScore:    capped(float64(c.SpeakingSeconds)/SecondsPerVoicePoint, MaxVoiceScore),
		ChatScore:     capped(float64(c.ChatMessages)*PointsPerChatMessage, MaxChatScore),
		DocumentScore: capped(float64(c.DocumentActivities)*PointsPerDocumentActivity, MaxDocumentScore),
		TaskScore:     capped(float64(c.TaskActivities)*PointsPerTaskActivity, MaxTaskScore),
	}
	b.RawTotal = b.VoiceScore + b.ChatScore + b.DocumentScore + b.TaskScore
	b.Score = b.RawTotal * (MaxEngagementScore / MaxRawScore)
	return b
}

// capped clamps v to [0, limit]
func capped(v, limit float64) float64 {
	return math.Max(0, math.Min(v, limit))
}
