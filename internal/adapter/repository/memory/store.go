// Package memory provides an in-process repositories.Store used by tests and
// local runs without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	"github.com/johnquangdev/engagement-tracker/internal/domain/repositories"
)

type dataset struct {
	seq          map[string]int64
	users        map[int64]entities.User
	meetings     map[int64]entities.Meeting
	participants map[int64]entities.Participant
	voice        map[int64]entities.VoiceActivity
	chats        map[int64]entities.ChatMessage
	documents    map[int64]entities.DocumentActivity
	tasks        map[int64]entities.TaskActivity
}

func newDataset() *dataset {
	return &dataset{
		seq:          make(map[string]int64),
		users:        make(map[int64]entities.User),
		meetings:     make(map[int64]entities.Meeting),
		participants: make(map[int64]entities.Participant),
		voice:        make(map[int64]entities.VoiceActivity),
		chats:        make(map[int64]entities.ChatMessage),
		documents:    make(map[int64]entities.DocumentActivity),
		tasks:        make(map[int64]entities.TaskActivity),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.seq {
		c.seq[k] = v
	}
	copyMap(c.users, d.users)
	copyMap(c.meetings, d.meetings)
	copyMap(c.participants, d.participants)
	copyMap(c.voice, d.voice)
	copyMap(c.chats, d.chats)
	copyMap(c.documents, d.documents)
	copyMap(c.tasks, d.tasks)
	return c
}

func copyMap[V any](dst, src map[int64]V) {
	for k, v := range src {
		dst[k] = v
	}
}

func (d *dataset) next(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

// sortedValues returns the map values matching keep, ordered by key
func sortedValues[V any](m map[int64]V, keep func(V) bool) []V {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// Store is a mutex guarded repositories.Store. Transactions hold the lock for
// their whole duration and work on a copy of the data that replaces the
// committed state only when the callback succeeds.
type Store struct {
	mu   *sync.Mutex
	data *dataset
	inTx bool
	now  func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		mu:   &sync.Mutex{},
		data: newDataset(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Users() repositories.UserRepository               { return &userRepository{s} }
func (s *Store) Meetings() repositories.MeetingRepository         { return &meetingRepository{s} }
func (s *Store) Participants() repositories.ParticipantRepository { return &participantRepository{s} }
func (s *Store) Activities() repositories.ActivityRepository      { return &activityRepository{s} }

// WithinTransaction runs fn against a private copy of the data and publishes it
// on success. Nested calls join the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{mu: s.mu, data: s.data.clone(), inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		return err
	}
	s.data = tx.data
	return nil
}

var _ repositories.Store = (*Store)(nil)
