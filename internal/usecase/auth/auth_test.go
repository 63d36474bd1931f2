package auth

import (
	"context"
	"errors"
	"testing"

	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/repository"
)

func newHandler() *AuthUsecaseHandler {
	return NewUserUsecaseHandler(repository.NewMapUserStorage(), repository.NewAuthSessionMapStorage())
}

func TestRegisterAndLogin(t *testing.T) {
	a := newHandler()
	ctx := context.Background()

	sessionID, err := a.RegisterUser(ctx, "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if sessionID == "" {
		t.Fatal("RegisterUser returned empty session id")
	}

	ok, u := a.CheckAuthorized(ctx, sessionID)
	if !ok || u.Username != "alice" {
		t.Fatalf("CheckAuthorized = %v/%q, want true/alice", ok, u.Username)
	}
	if u.Stats.GamesPlayed != 0 || u.Stats.Streak != 0 {
		t.Errorf("fresh user stats = %+v, want zeroes", u.Stats)
	}

	if _, err = a.RegisterUser(ctx, "alice", "", "other"); !errors.Is(err, errs.ErrUserExists) {
		t.Errorf("duplicate register = %v, want ErrUserExists", err)
	}

	loginSession, err := a.LoginUser(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if loginSession == sessionID {
		t.Error("login reused the registration session id")
	}
}

func TestLoginFailures(t *testing.T) {
	a := newHandler()
	ctx := context.Background()

	if _, err := a.LoginUser(ctx, "nobody", "pw"); !errors.Is(err, errs.ErrUserNotFound) {
		t.Errorf("unknown user = %v, want ErrUserNotFound", err)
	}

	if _, err := a.RegisterUser(ctx, "bob", "", "right"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.LoginUser(ctx, "bob", "wrong"); !errors.Is(err, errs.ErrWrongPassword) {
		t.Errorf("wrong password = %v, want ErrWrongPassword", err)
	}
}

func TestLogout(t *testing.T) {
	a := newHandler()
	ctx := context.Background()

	sessionID, err := a.RegisterUser(ctx, "carol", "", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if err = a.LogoutUser(sessionID); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}
	if ok, _ := a.CheckAuthorized(ctx, sessionID); ok {
		t.Error("session still authorized after logout")
	}
	if err = a.LogoutUser(sessionID); !errors.Is(err, errs.ErrSessionNotFound) {
		t.Errorf("second logout = %v, want ErrSessionNotFound", err)
	}
}

func TestSetHardMode(t *testing.T) {
	a := newHandler()
	ctx := context.Background()

	sessionID, err := a.RegisterUser(ctx, "dave", "", "pw")
	if err != nil {
		t.Fatal(err)
	}
	userID, err := a.GetUserIdFromSession(sessionID)
	if err != nil {
		t.Fatal(err)
	}

	if err = a.SetHardMode(ctx, userID, true); err != nil {
		t.Fatalf("SetHardMode: %v", err)
	}
	_, u := a.CheckAuthorized(ctx, sessionID)
	if !u.HardMode {
		t.Error("hard mode not persisted")
	}
}
