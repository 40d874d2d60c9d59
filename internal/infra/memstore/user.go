package memstore

import (
	"context"
	"sync"

	"savesphere/internal/domain/user"
	"savesphere/internal/infra"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*user.User)}
}

func (s *UserStore) Seed(users []*user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if _, exists := s.users[u.ID()]; !exists {
			s.users[u.ID()] = cloneUser(u)
		}
	}
}

func (s *UserStore) FindByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user "+id+" not found")
	}
	return cloneUser(u), nil
}

// Mutate applies fn to the stored record under the lock and returns the
// resulting snapshot. Point awards and counter bumps go through here so
// concurrent actions never lose an update.
func (s *UserStore) Mutate(_ context.Context, id string, fn func(*user.User) error) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user "+id+" not found")
	}
	if err := fn(u); err != nil {
		return nil, err
	}
	return cloneUser(u), nil
}

func cloneUser(u *user.User) *user.User {
	return user.Reconstruct(
		u.ID(), u.Name(), u.Avatar(),
		u.Points(), u.DealsPosted(), u.DealsVerified(),
		u.Joined(), u.IsPremium(), u.Location(), u.Category(),
		u.Reputation(), u.TrustedVerifier(),
	)
}
