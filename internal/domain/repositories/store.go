package repositories

import "context"

// Store groups the repositories backing the service and runs units of work atomically
type Store interface {
	Users() UserRepository
	Meetings() MeetingRepository
	Participants() ParticipantRepository
	Activities() ActivityRepository

	// WithinTransaction runs fn against a Store bound to a single transaction.
	// Writes made through tx are committed only when fn returns nil.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}
