package puzzle

import (
	"testing"

	errs "wordle_backend/internal/errors"
)

func TestCheckHardMode(t *testing.T) {
	// previous guess "crane" scored [correct, incorrect, misplaced, incorrect, incorrect]:
	// the next guess must keep c at position 0 and contain a somewhere.
	prevGuess := "crane"
	prevFeedback := []Mark{MarkCorrect, MarkIncorrect, MarkMisplaced, MarkIncorrect, MarkIncorrect}

	tests := []struct {
		name         string
		newGuess     string
		wantKind     string
		wantPosition int
		wantLetter   string
	}{
		{
			name:     "satisfies both constraints",
			newGuess: "cacao",
		},
		{
			name:     "correct letter moved elsewhere still needs the position",
			newGuess: "beach",
			wantKind: errs.MustKeepPosition,
		},
		{
			name:         "missing misplaced letter",
			newGuess:     "chose",
			wantKind:     errs.MustReuseLetter,
			wantPosition: 2,
			wantLetter:   "a",
		},
		{
			name:     "misplaced letter may stay at its old position",
			newGuess: "coast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := CheckHardMode(tt.newGuess, prevGuess, prevFeedback)
			if tt.wantKind == "" {
				if violation != nil {
					t.Fatalf("CheckHardMode(%q) = %v, want nil", tt.newGuess, violation)
				}
				return
			}
			if violation == nil {
				t.Fatalf("CheckHardMode(%q) = nil, want %s violation", tt.newGuess, tt.wantKind)
			}
			if violation.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", violation.Kind, tt.wantKind)
			}
			if tt.wantLetter != "" && violation.Letter != tt.wantLetter {
				t.Errorf("Letter = %q, want %q", violation.Letter, tt.wantLetter)
			}
			if tt.wantLetter != "" && violation.Position != tt.wantPosition {
				t.Errorf("Position = %d, want %d", violation.Position, tt.wantPosition)
			}
		})
	}
}

func TestCheckHardModeOnlyChecksGivenFeedback(t *testing.T) {
	// incorrect marks impose nothing
	prevFeedback := []Mark{MarkIncorrect, MarkIncorrect, MarkIncorrect, MarkIncorrect, MarkIncorrect}
	if v := CheckHardMode("zebra", "crane", prevFeedback); v != nil {
		t.Errorf("CheckHardMode with all-incorrect feedback = %v, want nil", v)
	}
}
