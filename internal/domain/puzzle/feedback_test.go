package puzzle

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Mark
	}{
		{
			name:   "all correct",
			guess:  "apple",
			target: "apple",
			want:   []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect},
		},
		{
			name:   "no letters in common",
			guess:  "brink",
			target: "motto",
			want:   []Mark{MarkIncorrect, MarkIncorrect, MarkIncorrect, MarkIncorrect, MarkIncorrect},
		},
		{
			name:   "duplicate letters in guess",
			guess:  "loyal",
			target: "allow",
			want:   []Mark{MarkMisplaced, MarkMisplaced, MarkIncorrect, MarkMisplaced, MarkMisplaced},
		},
		{
			name:   "duplicate letters exhaust target count",
			guess:  "oomph",
			target: "spoon",
			want:   []Mark{MarkMisplaced, MarkMisplaced, MarkIncorrect, MarkMisplaced, MarkIncorrect},
		},
		{
			name:   "correct match consumes the only occurrence",
			guess:  "eagle",
			target: "crane",
			// target has one e, taken by the exact match at index 4,
			// so the leading e is incorrect
			want: []Mark{MarkIncorrect, MarkMisplaced, MarkIncorrect, MarkIncorrect, MarkCorrect},
		},
		{
			name:   "guess against daily scenario word",
			guess:  "delta",
			target: "apple",
			want:   []Mark{MarkIncorrect, MarkMisplaced, MarkMisplaced, MarkIncorrect, MarkMisplaced},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate(%q, %q) length = %d, want %d", tt.guess, tt.target, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Evaluate(%q, %q)[%d] = %q, want %q", tt.guess, tt.target, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The count of correct+misplaced marks for any letter must never
// exceed that letter's count in the target.
func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	pairs := [][2]string{
		{"loyal", "allow"},
		{"oomph", "spoon"},
		{"geese", "eagle"},
		{"llama", "loyal"},
		{"spoon", "oomph"},
		{"aaaaa", "apple"},
	}

	for _, p := range pairs {
		guess, target := p[0], p[1]
		feedback := Evaluate(guess, target)
		for letter := byte('a'); letter <= 'z'; letter++ {
			marked := 0
			for i := range feedback {
				if guess[i] == letter && feedback[i] != MarkIncorrect {
					marked++
				}
			}
			inTarget := strings.Count(target, string(letter))
			if marked > inTarget {
				t.Errorf("Evaluate(%q, %q): letter %q marked %d times, target has %d",
					guess, target, letter, marked, inTarget)
			}
		}
	}
}
