package engagement

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/engagement-tracker/internal/adapter/repository/memory"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

var errBoom = errors.New("boom")

// fixture seeds a meeting with participants through the store
type fixture struct {
	t       *testing.T
	ctx     context.Context
	store   *memory.Store
	meeting *entities.Meeting
	start   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	meeting := entities.NewMeeting("Weekly sync", "", start, nil)
	require.NoError(t, store.Meetings().Create(ctx, meeting))

	return &fixture{t: t, ctx: ctx, store: store, meeting: meeting, start: start}
}

func (f *fixture) participant(username string) *entities.Participant {
	f.t.Helper()
	user := entities.NewUser(username, username+"@example.com", "hash")
	require.NoError(f.t, f.store.Users().Create(f.ctx, user))

	p := entities.NewParticipant(f.meeting.ID, user.ID, f.start)
	require.NoError(f.t, f.store.Participants().Create(f.ctx, p))
	return p
}

func (f *fixture) speak(p *entities.Participant, seconds int) {
	f.t.Helper()
	va, err := entities.NewVoiceActivity(p.ID, f.start, nil, &seconds)
	require.NoError(f.t, err)
	require.NoError(f.t, f.store.Activities().CreateVoiceActivity(f.ctx, va))
	require.NoError(f.t, f.store.Participants().IncrementSpeakingTime(f.ctx, p.ID, seconds))
}

func (f *fixture) chat(p *entities.Participant, n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		msg, err := entities.NewChatMessage(p.MeetingID, p.UserID, "message", f.start)
		require.NoError(f.t, err)
		require.NoError(f.t, f.store.Activities().CreateChatMessage(f.ctx, msg))
	}
}

func (f *fixture) document(p *entities.Participant, n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		a, err := entities.NewDocumentActivity(p.MeetingID, p.UserID, "doc-1", entities.DocumentActivityEdit, f.start)
		require.NoError(f.t, err)
		require.NoError(f.t, f.store.Activities().CreateDocumentActivity(f.ctx, a))
	}
}

func (f *fixture) task(p *entities.Participant, n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		a, err := entities.NewTaskActivity(p.MeetingID, p.UserID, "task-1", entities.TaskActivityUpdate, f.start)
		require.NoError(f.t, err)
		require.NoError(f.t, f.store.Activities().CreateTaskActivity(f.ctx, a))
	}
}

func TestComputeEngagement_Scores(t *testing.T) {
	f := newFixture(t)
	active := f.participant("alice")
	idle := f.participant("bob")

	f.speak(active, 300)
	f.chat(active, 3)
	f.document(active, 1)
	f.task(active, 1)

	svc := NewService(f.store, nil, nil, zap.NewNop())
	scored, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.Equal(t, active.ID, scored[0].ID)
	assert.InDelta(t, 53.333, scored[0].EngagementScore, 0.001)
	assert.InDelta(t, 16.0, scored[0].ScoreBreakdown.Data().RawTotal, 0.001)

	assert.Equal(t, idle.ID, scored[1].ID)
	assert.Equal(t, 0.0, scored[1].EngagementScore)

	stored, err := f.store.Participants().FindByID(f.ctx, active.ID)
	require.NoError(t, err)
	assert.InDelta(t, 53.333, stored.EngagementScore, 0.001)
	assert.Equal(t, 5.0, stored.ScoreBreakdown.Data().VoiceScore)
}

func TestComputeEngagement_Idempotent(t *testing.T) {
	f := newFixture(t)
	p := f.participant("carol")
	f.speak(p, 700)
	f.chat(p, 10)
	f.task(p, 2)

	svc := NewService(f.store, nil, nil, nil)
	first, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)
	second, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].EngagementScore, second[0].EngagementScore)
	assert.Equal(t, first[0].ScoreBreakdown.Data(), second[0].ScoreBreakdown.Data())

	b := second[0].ScoreBreakdown.Data()
	assert.Equal(t, 10.0, b.VoiceScore)
	assert.Equal(t, 10.0, b.ChatScore)
	assert.Equal(t, 5.0, b.TaskScore)
	assert.LessOrEqual(t, second[0].EngagementScore, 100.0)
	assert.GreaterOrEqual(t, second[0].EngagementScore, 0.0)
}

func TestComputeEngagement_MeetingNotFound(t *testing.T) {
	svc := NewService(memory.NewStore(), nil, nil, nil)

	_, err := svc.ComputeEngagement(context.Background(), 404)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	assert.True(t, usecaseErrors.IsNotFound(err))
}

func TestComputeEngagement_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	p := f.participant("dave")
	f.chat(p, 2)

	svc := NewService(&failingStore{Store: f.store}, nil, nil, nil)
	_, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.ErrorIs(t, err, errBoom)

	stored, err := f.store.Participants().FindByID(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.EngagementScore)
}

func TestComputeEngagement_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	p := f.participant("erin")
	f.chat(p, 1)

	pub := &recordingPublisher{}
	svc := NewService(f.store, pub, nil, nil)
	_, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.Equal(t, f.meeting.ID, pub.events[0].MeetingID)
	require.Len(t, pub.events[0].Scores, 1)
	assert.InDelta(t, 2*100.0/30, pub.events[0].Scores[0].EngagementScore, 0.001)
}

func TestComputeEngagement_PublishFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	f.participant("frank")

	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewService(f.store, &recordingPublisher{err: errBoom}, nil, zap.New(core))

	_, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to publish engagement event").Len())
}

func TestAggregate_WarnsOnSpeakingTimeDivergence(t *testing.T) {
	f := newFixture(t)
	p := f.participant("grace")
	f.speak(p, 40)
	// increment that bypassed the activity log
	require.NoError(t, f.store.Participants().IncrementSpeakingTime(f.ctx, p.ID, 60))

	core, logs := observer.New(zapcore.WarnLevel)
	activities, err := NewAggregator(zap.New(core)).Aggregate(f.ctx, f.store, f.meeting.ID)
	require.NoError(t, err)

	require.Len(t, activities, 1)
	assert.Equal(t, 100, activities[0].SpeakingSeconds)
	assert.Equal(t, 40, activities[0].LoggedSpeakingSeconds)
	assert.Equal(t, 1, logs.FilterMessage("speaking time diverges from voice activity log").Len())
}

func TestListSilentContributors(t *testing.T) {
	f := newFixture(t)
	quiet := f.participant("heidi")
	boundary := f.participant("ivan")
	chatty := f.participant("judy")

	f.chat(quiet, 2)
	f.task(quiet, 1)
	f.speak(boundary, 60)
	f.speak(chatty, 59)

	svc := NewService(f.store, nil, nil, nil)
	silent, err := svc.ListSilentContributors(f.ctx, f.meeting.ID, DefaultSilentThreshold)
	require.NoError(t, err)

	require.Len(t, silent, 2)
	assert.Equal(t, quiet.ID, silent[0].Participant.ID)
	assert.Equal(t, "heidi", silent[0].User.Username)
	assert.Equal(t, 2, silent[0].ChatMessages)
	assert.Equal(t, 0, silent[0].DocumentActivities)
	assert.Equal(t, 1, silent[0].TaskActivities)
	assert.Equal(t, chatty.ID, silent[1].Participant.ID)
}

func TestListSilentContributors_ZeroActivity(t *testing.T) {
	f := newFixture(t)
	p := f.participant("ken")

	svc := NewService(f.store, nil, nil, nil)
	scored, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scored[0].EngagementScore)

	silent, err := svc.ListSilentContributors(f.ctx, f.meeting.ID, DefaultSilentThreshold)
	require.NoError(t, err)
	require.Len(t, silent, 1)
	assert.Equal(t, p.ID, silent[0].Participant.ID)
	assert.Equal(t, 0.0, silent[0].EngagementScore)
}

func TestListSilentContributors_ScoreIsNotRecomputed(t *testing.T) {
	f := newFixture(t)
	p := f.participant("liam")
	f.chat(p, 1)

	svc := NewService(f.store, nil, nil, nil)
	_, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
	require.NoError(t, err)
	f.chat(p, 3)

	silent, err := svc.ListSilentContributors(f.ctx, f.meeting.ID, DefaultSilentThreshold)
	require.NoError(t, err)
	require.Len(t, silent, 1)
	assert.Equal(t, 4, silent[0].ChatMessages)
	assert.InDelta(t, 2*100.0/30, silent[0].EngagementScore, 0.001)
}

func TestListSilentContributors_Errors(t *testing.T) {
	t.Run("meeting not found", func(t *testing.T) {
		svc := NewService(memory.NewStore(), nil, nil, nil)
		_, err := svc.ListSilentContributors(context.Background(), 404, DefaultSilentThreshold)
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})

	t.Run("missing user aborts listing", func(t *testing.T) {
		f := newFixture(t)
		f.participant("mia")
		orphan := entities.NewParticipant(f.meeting.ID, 999, f.start)
		require.NoError(t, f.store.Participants().Create(f.ctx, orphan))

		svc := NewService(f.store, nil, nil, nil)
		silent, err := svc.ListSilentContributors(f.ctx, f.meeting.ID, DefaultSilentThreshold)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, silent)
	})

	t.Run("negative threshold", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store, nil, nil, nil)
		_, err := svc.ListSilentContributors(f.ctx, f.meeting.ID, -1)
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	})
}

func TestArchiveReport(t *testing.T) {
	t.Run("storage disabled", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store, nil, nil, nil)
		_, err := svc.ArchiveReport(f.ctx, f.meeting.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrReportStorageDisabled)
	})

	t.Run("writes snapshot", func(t *testing.T) {
		f := newFixture(t)
		p := f.participant("noah")
		f.speak(p, 120)

		archiver := &recordingArchiver{}
		svc := NewService(f.store, nil, archiver, nil)
		_, err := svc.ComputeEngagement(f.ctx, f.meeting.ID)
		require.NoError(t, err)

		archived, err := svc.ArchiveReport(f.ctx, f.meeting.ID)
		require.NoError(t, err)
		assert.Contains(t, archived.Key, "meetings/1/engagement-")
		assert.Equal(t, "mem://"+archived.Key, archived.Location)
		require.Len(t, archived.Report.Participants, 1)
		assert.Equal(t, 120, archived.Report.Participants[0].SpeakingTime)
		assert.Equal(t, 2.0, archived.Report.Participants[0].Breakdown.VoiceScore)
		assert.Len(t, archiver.objects[archived.Key], archived.Size)

		stored, err := svc.ListReports(f.ctx, f.meeting.ID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, archived.Key, stored[0].Key)

		_, err = svc.ListReports(f.ctx, 404)
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})
}

func TestReportKey(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, "meetings/12/engagement-20240501T093015.000000000Z.json", ReportKey(12, at))

	first := ReportKey(1, at)
	second := ReportKey(1, at.Add(400*time.Millisecond))
	assert.NotEqual(t, first, second)
	assert.Equal(t, "meetings/1/engagement-20240501T093015.400000000Z.json", second)
	assert.Less(t, first, second)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ComputedEvent
	err    error
}

func (p *recordingPublisher) PublishEngagementComputed(_ context.Context, event ComputedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type recordingArchiver struct {
	objects map[string][]byte
}

func (a *recordingArchiver) PutReport(_ context.Context, key string, body []byte) (string, error) {
	if a.objects == nil {
		a.objects = make(map[string][]byte)
	}
	a.objects[key] = body
	return "mem://" + key, nil
}

func (a *recordingArchiver) ListReports(_ context.Context, prefix string) ([]StoredReport, error) {
	var out []StoredReport
	for key, body := range a.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, StoredReport{Key: key, Size: int64(len(body)), Location: "mem://" + key})
		}
	}
	return out, nil
}

// failingStore fails UpdateScores after the writes have been applied
type failingStore struct {
	repositories.Store
}

func (s *failingStore) WithinTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return s.Store.WithinTransaction(ctx, func(tx repositories.Store) error {
		return fn(&failingTx{Store: tx})
	})
}

type failingTx struct {
	repositories.Store
}

func (tx *failingTx) Participants() repositories.ParticipantRepository {
	return &failingParticipants{ParticipantRepository: tx.Store.Participants()}
}

type failingParticipants struct {
	repositories.ParticipantRepository
}

func (r *failingParticipants) UpdateScores(ctx context.Context, participants []*entities.Participant) error {
	if err := r.ParticipantRepository.UpdateScores(ctx, participants); err != nil {
		return err
	}
	return errBoom
}
