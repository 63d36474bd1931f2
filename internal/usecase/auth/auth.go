package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	userDomain "wordle_backend/internal/domain/user"
	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/random"
)

type AuthUsecaseHandler struct {
	userStorage    UserStorage
	sessionStorage SessionStorage
}

func NewUserUsecaseHandler(u UserStorage, s SessionStorage) *AuthUsecaseHandler {
	return &AuthUsecaseHandler{
		userStorage:    u,
		sessionStorage: s,
	}
}

type UserStorage interface {
	GetUser(ctx context.Context, username string) (userDomain.User, bool)
	GetUserByID(ctx context.Context, id string) (userDomain.User, bool)
	CreateUser(ctx context.Context, newUser userDomain.User) (userDomain.User, error)
	SetHardMode(ctx context.Context, userID string, enabled bool) error
}

type SessionStorage interface {
	GetUserIdBySession(sessionID string) (userID string, ok bool)
	StoreSession(sessionID string, userID string)
	DeleteSession(sessionID string) (ok bool)
}

func (a *AuthUsecaseHandler) CheckAuthorized(ctx context.Context, sessionID string) (ok bool, user userDomain.User) {
	userID, found := a.sessionStorage.GetUserIdBySession(sessionID)
	if !found {
		return false, userDomain.User{}
	}
	user, ok = a.userStorage.GetUserByID(ctx, userID)
	if !ok {
		return false, userDomain.User{}
	}
	return ok, user
}

func (a *AuthUsecaseHandler) RegisterUser(ctx context.Context, username, email, password string) (sessionID string, err error) {
	newUser := userDomain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		HardMode:     false,
		Stats:        userDomain.Stats{},
		PasswordHash: password,
	}

	created, err := a.userStorage.CreateUser(ctx, newUser)
	if err != nil {
		return "", err
	}

	sessionID = random.RandString(64)
	a.sessionStorage.StoreSession(sessionID, created.ID)
	return sessionID, nil
}

func (a *AuthUsecaseHandler) LoginUser(ctx context.Context, providedUsername string, providedPassword string) (sessionID string, err error) {
	userFromDb, exists := a.userStorage.GetUser(ctx, providedUsername)
	if !exists {
		return "", errs.ErrUserNotFound
	}
	if providedPassword != userFromDb.PasswordHash {
		return "", errs.ErrWrongPassword
	}
	sessionID = random.RandString(64)
	a.sessionStorage.StoreSession(sessionID, userFromDb.ID)
	return sessionID, nil
}

// GetUserIdFromSession resolves the cookie value to a user id.
func (a *AuthUsecaseHandler) GetUserIdFromSession(sessionID string) (string, error) {
	userID, ok := a.sessionStorage.GetUserIdBySession(sessionID)
	if !ok {
		return "", errs.ErrSessionNotFound
	}
	return userID, nil
}

// returns nil or ErrSessionNotFound
func (a *AuthUsecaseHandler) LogoutUser(sessionID string) (err error) {
	_, ok := a.sessionStorage.GetUserIdBySession(sessionID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	ok = a.sessionStorage.DeleteSession(sessionID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	return nil
}

func (a *AuthUsecaseHandler) SetHardMode(ctx context.Context, userID string, enabled bool) error {
	return a.userStorage.SetHardMode(ctx, userID, enabled)
}
