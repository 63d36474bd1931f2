package session

import (
	"time"

	"wordle_backend/internal/domain/puzzle"
	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/statuses"
)

// GuessEntry is one scored guess in a session's history.
type GuessEntry struct {
	Word     string        `json:"word" bson:"word"`
	Feedback []puzzle.Mark `json:"feedback" bson:"feedback"`
}

// GameSession is the per-(user, date) puzzle aggregate. The pair
// (UserID, Date) is the natural key and is unique in storage. Only the
// puzzle usecase mutates it.
type GameSession struct {
	UserID    string       `json:"user_id" bson:"user_id"`
	Date      string       `json:"date" bson:"date"`
	Guesses   []GuessEntry `json:"guesses" bson:"guesses"`
	Status    string       `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

func New(userID, date string, now time.Time) GameSession {
	return GameSession{
		UserID:    userID,
		Date:      date,
		Guesses:   []GuessEntry{},
		Status:    statuses.StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *GameSession) IsSolved() bool {
	return s.Status == statuses.StatusSolved
}

func (s *GameSession) IsFailed() bool {
	return s.Status == statuses.StatusFailed
}

func (s *GameSession) IsTerminal() bool {
	return s.IsSolved() || s.IsFailed()
}

func (s *GameSession) Attempts() int {
	return len(s.Guesses)
}

// LastGuess returns the most recent entry, used by the hard-mode check.
func (s *GameSession) LastGuess() (GuessEntry, bool) {
	if len(s.Guesses) == 0 {
		return GuessEntry{}, false
	}
	return s.Guesses[len(s.Guesses)-1], true
}

func (s *GameSession) HasGuess(word string) bool {
	for _, g := range s.Guesses {
		if g.Word == word {
			return true
		}
	}
	return false
}

// CanAccept checks the session-level rejections for a normalized guess:
// terminal state, attempt cap, duplicate word. Word-level checks
// (length, dictionary, hard mode) belong to the caller.
func (s *GameSession) CanAccept(word string, maxAttempts int) error {
	if s.IsSolved() {
		return errs.ErrAlreadySolved
	}
	if s.IsFailed() || len(s.Guesses) >= maxAttempts {
		return errs.ErrAttemptsExhausted
	}
	if s.HasGuess(word) {
		return errs.ErrDuplicateGuess
	}
	return nil
}

// RecordGuess appends a scored guess and applies the state transition:
// solved on an exact match, failed when the attempt cap is reached,
// otherwise still in progress.
func (s *GameSession) RecordGuess(word string, feedback []puzzle.Mark, target string, maxAttempts int, now time.Time) {
	s.Guesses = append(s.Guesses, GuessEntry{Word: word, Feedback: feedback})
	s.UpdatedAt = now

	if word == target {
		s.Status = statuses.StatusSolved
		return
	}
	if len(s.Guesses) >= maxAttempts {
		s.Status = statuses.StatusFailed
	}
}
