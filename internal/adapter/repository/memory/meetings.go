package memory

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

type meetingRepository struct {
	s *Store
}

func (r *meetingRepository) Create(_ context.Context, meeting *entities.Meeting) error {
	defer r.s.lock()()

	meeting.ID = r.s.data.next("meetings")
	now := r.s.now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	r.s.data.meetings[meeting.ID] = *meeting
	return nil
}

func (r *meetingRepository) FindByID(_ context.Context, id int64) (*entities.Meeting, error) {
	defer r.s.lock()()

	m, ok := r.s.data.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return &m, nil
}

// LockByID is FindByID: the transaction already holds the store lock
func (r *meetingRepository) LockByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	return r.FindByID(ctx, id)
}

func (r *meetingRepository) List(_ context.Context) ([]*entities.Meeting, error) {
	defer r.s.lock()()

	var out []*entities.Meeting
	for _, m := range sortedValues(r.s.data.meetings, nil) {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

func (r *meetingRepository) Update(_ context.Context, meeting *entities.Meeting) error {
	defer r.s.lock()()

	if _, ok := r.s.data.meetings[meeting.ID]; !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.UpdatedAt = r.s.now()
	r.s.data.meetings[meeting.ID] = *meeting
	return nil
}

// Delete removes the meeting and every row it owns
func (r *meetingRepository) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()

	d := r.s.data
	if _, ok := d.meetings[id]; !ok {
		return entities.ErrMeetingNotFound
	}
	delete(d.meetings, id)

	for pid, p := range d.participants {
		if p.MeetingID != id {
			continue
		}
		for vid, v := range d.voice {
			if v.ParticipantID == pid {
				delete(d.voice, vid)
			}
		}
		delete(d.participants, pid)
	}
	for cid, c := range d.chats {
		if c.MeetingID == id {
			delete(d.chats, cid)
		}
	}
	for did, a := range d.documents {
		if a.MeetingID == id {
			delete(d.documents, did)
		}
	}
	for tid, a := range d.tasks {
		if a.MeetingID == id {
			delete(d.tasks, tid)
		}
	}
	return nil
}
