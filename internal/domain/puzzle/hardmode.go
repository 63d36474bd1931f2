package puzzle

import (
	"strings"

	errs "wordle_backend/internal/errors"
)

// CheckHardMode validates newGuess against the feedback of the
// immediately preceding guess only, not the full history. Correct
// letters must stay at their position; misplaced letters must appear
// somewhere in the new guess. Returns nil when the guess is allowed.
func CheckHardMode(newGuess, prevGuess string, prevFeedback []Mark) *errs.HardModeViolationError {
	for i, mark := range prevFeedback {
		letter := prevGuess[i]
		switch mark {
		case MarkCorrect:
			if i >= len(newGuess) || newGuess[i] != letter {
				return &errs.HardModeViolationError{
					Position: i,
					Letter:   string(letter),
					Kind:     errs.MustKeepPosition,
				}
			}
		case MarkMisplaced:
			if !strings.ContainsRune(newGuess, rune(letter)) {
				return &errs.HardModeViolationError{
					Position: i,
					Letter:   string(letter),
					Kind:     errs.MustReuseLetter,
				}
			}
		}
	}
	return nil
}
