package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

func TestToMeetingResponse_Timestamps(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	m := &entities.Meeting{
		ID:        1,
		Title:     "Standup",
		StartTime: time.Date(2024, 5, 1, 16, 0, 0, 0, loc),
	}

	resp := ToMeetingResponse(m)
	assert.Equal(t, "2024-05-01T09:00:00Z", resp.StartTime)
	assert.Nil(t, resp.EndTime)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"end_time":null`)
}

func TestToParticipantResponse_Breakdown(t *testing.T) {
	leave := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := entities.NewParticipant(1, 2, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	p.LeaveTime = &leave
	p.ApplyScore(entities.ScoreBreakdown{VoiceScore: 5, ChatScore: 6, RawTotal: 11, Score: 36.67})

	resp := ToParticipantResponse(p)
	require.NotNil(t, resp.LeaveTime)
	assert.Equal(t, "2024-05-01T10:00:00Z", *resp.LeaveTime)
	assert.Equal(t, 36.67, resp.EngagementScore)
	assert.Equal(t, 5.0, resp.ScoreBreakdown.VoiceScore)
}

func TestToUserResponse_Nil(t *testing.T) {
	assert.Nil(t, ToUserResponse(nil))
}
