package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

// Store implements repositories.Store on top of GORM
type Store struct {
	db           *gorm.DB
	users        repositories.UserRepository
	meetings     repositories.MeetingRepository
	participants repositories.ParticipantRepository
	activities   repositories.ActivityRepository
}

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		users:        NewUserRepository(db),
		meetings:     NewMeetingRepository(db),
		participants: NewParticipantRepository(db),
		activities:   NewActivityRepository(db),
	}
}

func (s *Store) Users() repositories.UserRepository               { return s.users }
func (s *Store) Meetings() repositories.MeetingRepository         { return s.meetings }
func (s *Store) Participants() repositories.ParticipantRepository { return s.participants }
func (s *Store) Activities() repositories.ActivityRepository      { return s.activities }

// WithinTransaction runs fn inside a database transaction.
// The transaction is rolled back when fn returns an error or panics.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

var _ repositories.Store = (*Store)(nil)
