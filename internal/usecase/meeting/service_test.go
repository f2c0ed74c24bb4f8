package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/engagement-tracker/internal/adapter/repository/memory"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

func setup(t *testing.T) (*MeetingService, *memory.Store, *entities.Meeting, *entities.User) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewMeetingService(store)

	user := entities.NewUser("alice", "alice@example.com", "hash")
	require.NoError(t, store.Users().Create(ctx, user))

	meeting, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Design review"})
	require.NoError(t, err)
	return svc, store, meeting, user
}

func ptr[T any](v T) *T { return &v }

func TestCreateMeeting(t *testing.T) {
	svc := NewMeetingService(memory.NewStore())
	ctx := context.Background()

	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	meeting, err := svc.CreateMeeting(ctx, CreateMeetingInput{
		Title:     "Kickoff",
		StartTime: &start,
		EndTime:   ptr(start.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), meeting.ID)
	assert.Equal(t, start, meeting.StartTime)
	assert.Equal(t, "", meeting.Description)

	_, err = svc.CreateMeeting(ctx, CreateMeetingInput{Title: "  "})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	assert.ErrorIs(t, err, entities.ErrInvalidTitle)

	_, err = svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Backwards", StartTime: &start, EndTime: ptr(start.Add(-time.Minute))})
	assert.ErrorIs(t, err, entities.ErrInvalidTimeRange)
}

func TestUpdateMeeting(t *testing.T) {
	svc, _, meeting, _ := setup(t)
	ctx := context.Background()

	updated, err := svc.UpdateMeeting(ctx, meeting.ID, UpdateMeetingInput{Description: ptr("notes")})
	require.NoError(t, err)
	assert.Equal(t, "Design review", updated.Title)
	assert.Equal(t, "notes", updated.Description)

	_, err = svc.UpdateMeeting(ctx, 404, UpdateMeetingInput{Title: ptr("x")})
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestDeleteMeeting(t *testing.T) {
	svc, _, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeeting(ctx, meeting.ID))

	_, err = svc.GetMeeting(ctx, meeting.ID)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	_, err = svc.ListVoiceActivities(ctx, p.ID)
	assert.ErrorIs(t, err, entities.ErrParticipantNotFound)
	assert.ErrorIs(t, svc.DeleteMeeting(ctx, meeting.ID), entities.ErrMeetingNotFound)
}

func TestAddParticipant(t *testing.T) {
	svc, _, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, p.SpeakingTime)
	assert.Equal(t, 0.0, p.EngagementScore)
	assert.Nil(t, p.LeaveTime)

	t.Run("duplicate is a conflict", func(t *testing.T) {
		_, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
		assert.ErrorIs(t, err, usecaseErrors.ErrParticipantAlreadyExists)
		assert.True(t, usecaseErrors.IsConflict(err))
	})

	t.Run("unknown meeting", func(t *testing.T) {
		_, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: 99, UserID: user.ID})
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: 99})
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	})
}

func TestRecordVoiceActivity(t *testing.T) {
	svc, store, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)

	_, err = svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(20)})
	require.NoError(t, err)

	activity, err := svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, activity.Duration)
	assert.Equal(t, int64(2), activity.ID)

	stored, err := store.Participants().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 65, stored.SpeakingTime)

	logged, err := svc.ListVoiceActivities(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, logged, 2)
}

func TestRecordVoiceActivity_DerivesDuration(t *testing.T) {
	svc, store, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)

	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	activity, err := svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{
		ParticipantID: p.ID,
		StartTime:     &start,
		EndTime:       ptr(start.Add(90 * time.Second)),
	})
	require.NoError(t, err)
	assert.Equal(t, 90, activity.Duration)

	stored, err := store.Participants().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.SpeakingTime)
}

func TestRecordVoiceActivity_Errors(t *testing.T) {
	svc, store, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)

	_, err = svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: 404, Duration: ptr(10)})
	assert.ErrorIs(t, err, entities.ErrParticipantNotFound)

	_, err = svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(-5)})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	_, err = svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{
		ParticipantID: p.ID,
		StartTime:     &start,
		EndTime:       ptr(start.Add(-time.Second)),
	})
	assert.ErrorIs(t, err, entities.ErrInvalidTimeRange)

	stored, err := store.Participants().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SpeakingTime)
}

func TestRecordVoiceActivity_Bounds(t *testing.T) {
	svc, store, meeting, user := setup(t)
	ctx := context.Background()

	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID})
	require.NoError(t, err)

	t.Run("derived duration past the column range", func(t *testing.T) {
		start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{
			ParticipantID: p.ID,
			StartTime:     &start,
			EndTime:       ptr(start.AddDate(100, 0, 0)),
		})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
		assert.ErrorIs(t, err, entities.ErrInvalidDuration)
	})

	t.Run("explicit duration past the column range", func(t *testing.T) {
		_, err := svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(entities.MaxSeconds + 1)})
		assert.ErrorIs(t, err, entities.ErrInvalidDuration)
	})

	t.Run("running total past the column range", func(t *testing.T) {
		require.NoError(t, store.Participants().IncrementSpeakingTime(ctx, p.ID, entities.MaxSeconds-10))

		_, err := svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(11)})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
		assert.ErrorIs(t, err, entities.ErrSpeakingTimeOverflow)

		_, err = svc.RecordVoiceActivity(ctx, RecordVoiceActivityInput{ParticipantID: p.ID, Duration: ptr(10)})
		require.NoError(t, err)

		stored, err := store.Participants().FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.MaxSeconds, stored.SpeakingTime)

		logged, err := store.Activities().ListVoiceActivities(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, logged, 1)
	})
}

func TestLeaveMeeting(t *testing.T) {
	svc, _, meeting, user := setup(t)
	ctx := context.Background()

	join := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	p, err := svc.AddParticipant(ctx, AddParticipantInput{MeetingID: meeting.ID, UserID: user.ID, JoinTime: &join})
	require.NoError(t, err)

	left, err := svc.LeaveMeeting(ctx, p.ID, join.Add(30*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, left.LeaveTime)
	assert.Equal(t, join.Add(30*time.Minute), *left.LeaveTime)

	_, err = svc.LeaveMeeting(ctx, p.ID, join.Add(-time.Minute))
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
}

func TestActivityLogs(t *testing.T) {
	svc, _, meeting, user := setup(t)
	ctx := context.Background()

	_, err := svc.AddChatMessage(ctx, AddChatMessageInput{MeetingID: meeting.ID, UserID: user.ID, Content: "hello"})
	require.NoError(t, err)
	_, err = svc.AddDocumentActivity(ctx, AddWorkActivityInput{MeetingID: meeting.ID, UserID: user.ID, EntityID: "doc-7", ActivityType: entities.DocumentActivityComment})
	require.NoError(t, err)
	_, err = svc.AddTaskActivity(ctx, AddWorkActivityInput{MeetingID: meeting.ID, UserID: user.ID, EntityID: "task-3", ActivityType: entities.TaskActivityComplete})
	require.NoError(t, err)

	chats, err := svc.ListChatMessages(ctx, meeting.ID)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "hello", chats[0].Content)

	docs, err := svc.ListDocumentActivities(ctx, meeting.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-7", docs[0].DocumentID)

	tasks, err := svc.ListTaskActivities(ctx, meeting.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, entities.TaskActivityComplete, tasks[0].ActivityType)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.AddChatMessage(ctx, AddChatMessageInput{MeetingID: meeting.ID, UserID: user.ID})
		assert.ErrorIs(t, err, entities.ErrEmptyContent)
		_, err = svc.AddDocumentActivity(ctx, AddWorkActivityInput{MeetingID: meeting.ID, UserID: user.ID, ActivityType: "edit"})
		assert.ErrorIs(t, err, entities.ErrMissingEntityID)
		_, err = svc.AddTaskActivity(ctx, AddWorkActivityInput{MeetingID: meeting.ID, UserID: user.ID, EntityID: "task-1"})
		assert.ErrorIs(t, err, entities.ErrMissingActivityType)
	})

	t.Run("references", func(t *testing.T) {
		_, err := svc.AddChatMessage(ctx, AddChatMessageInput{MeetingID: 404, UserID: user.ID, Content: "hi"})
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
		_, err = svc.AddTaskActivity(ctx, AddWorkActivityInput{MeetingID: meeting.ID, UserID: 404, EntityID: "t", ActivityType: "create"})
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		_, err = svc.ListChatMessages(ctx, 404)
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})
}
