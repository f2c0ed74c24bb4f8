package memory

import (
	"context"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(_ context.Context, user *entities.User) error {
	defer r.s.lock()()

	for _, u := range r.s.data.users {
		if u.Username == user.Username || u.Email == user.Email {
			return entities.ErrUserExists
		}
	}
	user.ID = r.s.data.next("users")
	now := r.s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.s.data.users[user.ID] = *user
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entities.User, error) {
	defer r.s.lock()()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	return r.find(func(u entities.User) bool { return u.Username == username })
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	return r.find(func(u entities.User) bool { return u.Email == email })
}

func (r *userRepository) find(match func(entities.User) bool) (*entities.User, error) {
	defer r.s.lock()()

	found := sortedValues(r.s.data.users, match)
	if len(found) == 0 {
		return nil, entities.ErrUserNotFound
	}
	return &found[0], nil
}
