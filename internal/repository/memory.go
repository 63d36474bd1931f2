package repository

import (
	"context"
	"sort"
	"sync"

	"wordle_backend/internal/domain/session"
	"wordle_backend/internal/domain/user"
	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/statuses"
)

// Map-backed storages. They satisfy the same interfaces as the
// mongo/redis implementations and back the usecase tests and local
// runs without databases.

type UserMapStorage struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewMapUserStorage() *UserMapStorage {
	return &UserMapStorage{users: make(map[string]user.User)}
}

func (u *UserMapStorage) GetUser(_ context.Context, username string) (user.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, v := range u.users {
		if v.Username == username {
			return v, true
		}
	}
	return user.User{}, false
}

func (u *UserMapStorage) GetUserByID(_ context.Context, id string) (user.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	v, ok := u.users[id]
	return v, ok
}

func (u *UserMapStorage) CreateUser(ctx context.Context, newUser user.User) (user.User, error) {
	if _, found := u.GetUser(ctx, newUser.Username); found {
		return user.User{}, errs.ErrUserExists
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users[newUser.ID] = newUser
	return newUser, nil
}

func (u *UserMapStorage) UpdateStats(_ context.Context, userID string, stats user.Stats) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	v.Stats = stats
	u.users[userID] = v
	return nil
}

func (u *UserMapStorage) SetHardMode(_ context.Context, userID string, enabled bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	v.HardMode = enabled
	u.users[userID] = v
	return nil
}

type SessionMapStorage struct {
	mu       sync.RWMutex
	sessions map[string]session.GameSession
}

func NewMapSessionStorage() *SessionMapStorage {
	return &SessionMapStorage{sessions: make(map[string]session.GameSession)}
}

func sessionKey(userID, date string) string {
	return userID + "/" + date
}

func (s *SessionMapStorage) GetSession(_ context.Context, userID, date string) (session.GameSession, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sessions[sessionKey(userID, date)]
	return v, ok, nil
}

func (s *SessionMapStorage) CreateSession(_ context.Context, gs session.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey(gs.UserID, gs.Date)
	if _, ok := s.sessions[key]; ok {
		return errs.ErrInternal
	}
	s.sessions[key] = gs
	return nil
}

func (s *SessionMapStorage) UpdateSession(_ context.Context, gs session.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey(gs.UserID, gs.Date)
	if _, ok := s.sessions[key]; !ok {
		return errs.ErrGameNotStarted
	}
	s.sessions[key] = gs
	return nil
}

func (s *SessionMapStorage) GetSolvedDates(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var dates []string
	for _, v := range s.sessions {
		if v.UserID == userID && v.Status == statuses.StatusSolved {
			dates = append(dates, v.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

type AuthSessionMapStorage struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewAuthSessionMapStorage() *AuthSessionMapStorage {
	return &AuthSessionMapStorage{sessions: make(map[string]string)}
}

func (a *AuthSessionMapStorage) GetUserIdBySession(sessionID string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.sessions[sessionID]
	return v, ok
}

func (a *AuthSessionMapStorage) StoreSession(sessionID string, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[sessionID] = userID
}

func (a *AuthSessionMapStorage) DeleteSession(sessionID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.sessions[sessionID]; !ok {
		return false
	}
	delete(a.sessions, sessionID)
	return true
}
