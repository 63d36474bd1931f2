package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user with provided username was not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrSessionNotFound = errors.New("session was not found")
	ErrUserExists      = errors.New("user already exists")
	ErrInternal        = errors.New("internal error")

	// Guess rejections. Returned as values, never panics; the delivery
	// layer maps them to HTTP statuses.
	ErrInvalidGuessLength = errors.New("guess has wrong length")
	ErrInvalidGuessWord   = errors.New("guess is not in the word list")
	ErrGameNotStarted     = errors.New("no puzzle session for this date")
	ErrAlreadySolved      = errors.New("puzzle already solved")
	ErrAttemptsExhausted  = errors.New("no attempts left")
	ErrDuplicateGuess     = errors.New("word already guessed")

	// ErrEmptyWordList is fatal at startup: the engine must not serve
	// puzzles from an empty vocabulary.
	ErrEmptyWordList = errors.New("word list is empty after validation")

	ErrStorage = errors.New("storage error")
)

// Hard-mode violation kinds.
const (
	MustKeepPosition = "must_keep_position"
	MustReuseLetter  = "must_reuse_letter"
)

// HardModeViolationError reports which constraint from the previous
// guess's feedback the new guess broke, with enough structure for the
// client to render a specific message.
type HardModeViolationError struct {
	Position int
	Letter   string
	Kind     string
}

func (e *HardModeViolationError) Error() string {
	if e.Kind == MustKeepPosition {
		return fmt.Sprintf("hard mode: letter %q must stay at position %d", e.Letter, e.Position+1)
	}
	return fmt.Sprintf("hard mode: guess must contain letter %q", e.Letter)
}

// Storage wraps a persistence failure so callers can tell "your guess
// was invalid" apart from "we couldn't save your guess".
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
