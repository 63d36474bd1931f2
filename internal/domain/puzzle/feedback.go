package puzzle

// Mark is the per-letter result of scoring a guess against the target.
type Mark string

const (
	MarkCorrect   Mark = "correct"   // right letter, right position
	MarkMisplaced Mark = "misplaced" // letter occurs elsewhere in the target
	MarkIncorrect Mark = "incorrect" // letter not available in the target
)

// Evaluate scores guess against target using the standard two-pass
// algorithm. The first pass marks exact matches and counts the
// remaining target letters; the second resolves misplaced/incorrect for
// the rest, left to right, so that the number of correct+misplaced
// marks for any letter never exceeds that letter's count in the target.
// Both inputs must be lowercase and of equal length.
func Evaluate(guess, target string) []Mark {
	n := len(guess)
	feedback := make([]Mark, n)

	var remaining [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			feedback[i] = MarkCorrect
		} else {
			remaining[target[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if feedback[i] == MarkCorrect {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && remaining[j] > 0 {
			feedback[i] = MarkMisplaced
			remaining[j]--
		} else {
			feedback[i] = MarkIncorrect
		}
	}

	return feedback
}
