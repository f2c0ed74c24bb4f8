package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

func TestStore_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	meeting := entities.NewMeeting("Standup", "", time.Time{}, nil)
	require.NoError(t, s.Meetings().Create(ctx, meeting))

	boom := errors.New("boom")
	err := s.WithinTransaction(ctx, func(tx repositories.Store) error {
		p := entities.NewParticipant(meeting.ID, 1, meeting.StartTime)
		require.NoError(t, tx.Participants().Create(ctx, p))
		return boom
	})
	require.ErrorIs(t, err, boom)

	participants, err := s.Participants().FindByMeetingID(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestStore_TransactionCommit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	meeting := entities.NewMeeting("Planning", "", time.Time{}, nil)
	require.NoError(t, s.Meetings().Create(ctx, meeting))

	err := s.WithinTransaction(ctx, func(tx repositories.Store) error {
		return tx.Participants().Create(ctx, entities.NewParticipant(meeting.ID, 7, meeting.StartTime))
	})
	require.NoError(t, err)

	p, err := s.Participants().FindByMeetingAndUser(ctx, meeting.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestStore_DuplicateParticipant(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Participants().Create(ctx, entities.NewParticipant(1, 2, time.Time{})))
	err := s.Participants().Create(ctx, entities.NewParticipant(1, 2, time.Time{}))
	assert.ErrorIs(t, err, entities.ErrParticipantAlreadyExists)
}

func TestStore_DeleteMeetingCascades(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	meeting := entities.NewMeeting("Retro", "", time.Time{}, nil)
	require.NoError(t, s.Meetings().Create(ctx, meeting))
	p := entities.NewParticipant(meeting.ID, 3, meeting.StartTime)
	require.NoError(t, s.Participants().Create(ctx, p))

	va, err := entities.NewVoiceActivity(p.ID, meeting.StartTime, nil, intPtr(30))
	require.NoError(t, err)
	require.NoError(t, s.Activities().CreateVoiceActivity(ctx, va))

	msg, err := entities.NewChatMessage(meeting.ID, 3, "hi", meeting.StartTime)
	require.NoError(t, err)
	require.NoError(t, s.Activities().CreateChatMessage(ctx, msg))

	require.NoError(t, s.Meetings().Delete(ctx, meeting.ID))

	_, err = s.Participants().FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, entities.ErrParticipantNotFound)

	voice, err := s.Activities().ListVoiceActivities(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, voice)

	chats, err := s.Activities().ListChatMessages(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Empty(t, chats)

	assert.ErrorIs(t, s.Meetings().Delete(ctx, meeting.ID), entities.ErrMeetingNotFound)
}

func intPtr(v int) *int { return &v }
