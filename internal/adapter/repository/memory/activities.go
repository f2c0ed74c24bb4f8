package memory

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

type activityRepository struct {
	s *Store
}

func (r *activityRepository) CreateVoiceActivity(_ context.Context, activity *entities.VoiceActivity) error {
	defer r.s.lock()()

	if _, ok := r.s.data.participants[activity.ParticipantID]; !ok {
		return entities.ErrParticipantNotFound
	}
	activity.ID = r.s.data.next("voice_activities")
	r.s.data.voice[activity.ID] = *activity
	return nil
}

func (r *activityRepository) ListVoiceActivities(_ context.Context, participantID int64) ([]*entities.VoiceActivity, error) {
	defer r.s.lock()()

	return pointers(sortedValues(r.s.data.voice, func(v entities.VoiceActivity) bool {
		return v.ParticipantID == participantID
	})), nil
}

func (r *activityRepository) SumVoiceDuration(_ context.Context, participantID int64) (int, error) {
	defer r.s.lock()()

	total := 0
	for _, v := range r.s.data.voice {
		if v.ParticipantID == participantID {
			total += v.Duration
		}
	}
	return total, nil
}

func (r *activityRepository) CreateChatMessage(_ context.Context, message *entities.ChatMessage) error {
	defer r.s.lock()()

	message.ID = r.s.data.next("chat_messages")
	r.s.data.chats[message.ID] = *message
	return nil
}

func (r *activityRepository) ListChatMessages(_ context.Context, meetingID int64) ([]*entities.ChatMessage, error) {
	defer r.s.lock()()

	return pointers(sortedValues(r.s.data.chats, func(m entities.ChatMessage) bool {
		return m.MeetingID == meetingID
	})), nil
}

func (r *activityRepository) CountChatMessages(_ context.Context, meetingID, userID int64) (int, error) {
	defer r.s.lock()()

	return len(sortedValues(r.s.data.chats, func(m entities.ChatMessage) bool {
		return m.MeetingID == meetingID && m.UserID == userID
	})), nil
}

func (r *activityRepository) CreateDocumentActivity(_ context.Context, activity *entities.DocumentActivity) error {
	defer r.s.lock()()

	activity.ID = r.s.data.next("document_activities")
	r.s.data.documents[activity.ID] = *activity
	return nil
}

func (r *activityRepository) ListDocumentActivities(_ context.Context, meetingID int64) ([]*entities.DocumentActivity, error) {
	defer r.s.lock()()

	return pointers(sortedValues(r.s.data.documents, func(a entities.DocumentActivity) bool {
		return a.MeetingID == meetingID
	})), nil
}

func (r *activityRepository) CountDocumentActivities(_ context.Context, meetingID, userID int64) (int, error) {
	defer r.s.lock()()

	return len(sortedValues(r.s.data.documents, func(a entities.DocumentActivity) bool {
		return a.MeetingID == meetingID && a.UserID == userID
	})), nil
}

func (r *activityRepository) CreateTaskActivity(_ context.Context, activity *entities.TaskActivity) error {
	defer r.s.lock()()

	activity.ID = r.s.data.next("task_activities")
	r.s.data.tasks[activity.ID] = *activity
	return nil
}

func (r *activityRepository) ListTaskActivities(_ context.Context, meetingID int64) ([]*entities.TaskActivity, error) {
	defer r.s.lock()()

	return pointers(sortedValues(r.s.data.tasks, func(a entities.TaskActivity) bool {
		return a.MeetingID == meetingID
	})), nil
}

func (r *activityRepository) CountTaskActivities(_ context.Context, meetingID, userID int64) (int, error) {
	defer r.s.lock()()

	return len(sortedValues(r.s.data.tasks, func(a entities.TaskActivity) bool {
		return a.MeetingID == meetingID && a.UserID == userID
	})), nil
}

func pointers[V any](values []V) []*V {
	out := make([]*V, 0, len(values))
	for i := range values {
		out = append(out, &values[i])
	}
	return out
}
