package memory

import (
	"context"
	"time"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

type participantRepository struct {
	s *Store
}

func (r *participantRepository) Create(_ context.Context, participant *entities.Participant) error {
	defer r.s.lock()()

	for _, p := range r.s.data.participants {
		if p.MeetingID == participant.MeetingID && p.UserID == participant.UserID {
			return entities.ErrParticipantAlreadyExists
		}
	}
	participant.ID = r.s.data.next("participants")
	now := r.s.now()
	participant.CreatedAt = now
	participant.UpdatedAt = now
	r.s.data.participants[participant.ID] = *participant
	return nil
}

func (r *participantRepository) FindByID(_ context.Context, id int64) (*entities.Participant, error) {
	defer r.s.lock()()

	p, ok := r.s.data.participants[id]
	if !ok {
		return nil, entities.ErrParticipantNotFound
	}
	return &p, nil
}

func (r *participantRepository) FindByMeetingAndUser(_ context.Context, meetingID, userID int64) (*entities.Participant, error) {
	defer r.s.lock()()

	found := sortedValues(r.s.data.participants, func(p entities.Participant) bool {
		return p.MeetingID == meetingID && p.UserID == userID
	})
	if len(found) == 0 {
		return nil, entities.ErrParticipantNotFound
	}
	return &found[0], nil
}

func (r *participantRepository) FindByMeetingID(_ context.Context, meetingID int64) ([]*entities.Participant, error) {
	defer r.s.lock()()

	var out []*entities.Participant
	for _, p := range sortedValues(r.s.data.participants, func(p entities.Participant) bool {
		return p.MeetingID == meetingID
	}) {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *participantRepository) IncrementSpeakingTime(_ context.Context, participantID int64, seconds int) error {
	defer r.s.lock()()

	p, ok := r.s.data.participants[participantID]
	if !ok {
		return entities.ErrParticipantNotFound
	}
	p.AddSpeakingTime(seconds)
	p.UpdatedAt = r.s.now()
	r.s.data.participants[participantID] = p
	return nil
}

func (r *participantRepository) UpdateScores(_ context.Context, participants []*entities.Participant) error {
	defer r.s.lock()()

	for _, in := range participants {
		p, ok := r.s.data.participants[in.ID]
		if !ok {
			return entities.ErrParticipantNotFound
		}
		p.EngagementScore = in.EngagementScore
		p.ScoreBreakdown = in.ScoreBreakdown
		p.UpdatedAt = r.s.now()
		r.s.data.participants[in.ID] = p
	}
	return nil
}

func (r *participantRepository) MarkAsLeft(_ context.Context, participantID int64, at time.Time) error {
	defer r.s.lock()()

	p, ok := r.s.data.participants[participantID]
	if !ok {
		return entities.ErrParticipantNotFound
	}
	p.Leave(at)
	p.UpdatedAt = r.s.now()
	r.s.data.participants[participantID] = p
	return nil
}
