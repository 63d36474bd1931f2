package user

import "time"

// Outcome of a finished daily session.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ApplyOutcome updates the streak counters for a session that reached a
// terminal state on the given ISO date. Must be invoked exactly once
// per terminal transition; the LastPlayed==date guard keeps a re-fired
// win from bumping the streak twice.
func ApplyOutcome(u *User, date string, outcome Outcome) {
	st := &u.Stats

	switch outcome {
	case OutcomeWon:
		st.GamesWon++
		st.GamesPlayed++
		switch {
		case st.LastPlayed == date:
			// already recorded today, streak stays
		case st.LastPlayed != "" && isNextDay(st.LastPlayed, date):
			st.Streak++
		default:
			st.Streak = 1
		}
		if st.Streak > st.BestStreak {
			st.BestStreak = st.Streak
		}
		st.LastPlayed = date

	case OutcomeLost:
		st.GamesPlayed++
		st.Streak = 0
		st.LastPlayed = date
	}
}

// isNextDay reports whether b is exactly one calendar day after a.
// Both are ISO dates, so the comparison is day-granular and immune to
// time-of-day.
func isNextDay(a, b string) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.AddDate(0, 0, 1).Equal(tb)
}
