package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestMeetingRepository_FindByIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewMeetingRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "meetings" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_LockByIDUsesRowLock(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewMeetingRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "meetings" WHERE id = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "Standup"))

	meeting, err := repo.LockByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), meeting.ID)
	assert.Equal(t, "Standup", meeting.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepository_DeleteMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewMeetingRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "meetings"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_CreateDuplicate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewParticipantRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "participants"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), entities.NewParticipant(1, 2, time.Now()))
	assert.ErrorIs(t, err, entities.ErrParticipantAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_IncrementSpeakingTime(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewParticipantRepository(gdb)

	increment := regexp.QuoteMeta(`UPDATE "participants" SET "speaking_time"=speaking_time + $1,"updated_at"=$2 WHERE id = $3`)
	mock.ExpectExec(increment).
		WithArgs(45, sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(increment).
		WithArgs(45, sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.IncrementSpeakingTime(context.Background(), 1, 45))
	assert.ErrorIs(t, repo.IncrementSpeakingTime(context.Background(), 2, 45), entities.ErrParticipantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Aggregates(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewActivityRepository(gdb)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(duration), 0) FROM "voice_activities" WHERE participant_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(65))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "chat_messages" WHERE meeting_id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "task_activities" WHERE meeting_id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	total, err := repo.SumVoiceDuration(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 65, total)

	chats, err := repo.CountChatMessages(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, chats)

	tasks, err := repo.CountTaskActivities(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, tasks)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTransaction(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		store := NewStore(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "participants" SET "speaking_time"=speaking_time + $1`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.WithinTransaction(context.Background(), func(tx repositories.Store) error {
			return tx.Participants().IncrementSpeakingTime(context.Background(), 1, 10)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		store := NewStore(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "participants" SET "speaking_time"=speaking_time + $1`)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := store.WithinTransaction(context.Background(), func(tx repositories.Store) error {
			return tx.Participants().IncrementSpeakingTime(context.Background(), 1, 10)
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrConnDone))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
