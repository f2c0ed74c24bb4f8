package entities

// ScoreBreakdown holds the capped component scores behind an engagement score.
// RawTotal is out of 30, Score is RawTotal normalized to 0-100.
type ScoreBreakdown struct {
	VoiceScore    float64 `json:"voice_score"`
	ChatScore     float64 `json:"chat_score"`
	DocumentScore float64 `json:"document_score"`
	TaskScore     float64 `json:"task_score"`
	RawTotal      float64 `json:"raw_total"`
	Score         float64 `json:"score"`
}
