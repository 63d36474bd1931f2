package user

import "testing"

func TestApplyOutcomeWin(t *testing.T) {
	tests := []struct {
		name       string
		before     Stats
		date       string
		wantStreak int
		wantBest   int
	}{
		{
			name:       "first ever win",
			before:     Stats{},
			date:       "2024-01-02",
			wantStreak: 1,
			wantBest:   1,
		},
		{
			name:       "consecutive day extends streak",
			before:     Stats{Streak: 3, BestStreak: 3, LastPlayed: "2024-01-01"},
			date:       "2024-01-02",
			wantStreak: 4,
			wantBest:   4,
		},
		{
			name:       "gap resets to one",
			before:     Stats{Streak: 3, BestStreak: 5, LastPlayed: "2024-01-01"},
			date:       "2024-01-05",
			wantStreak: 1,
			wantBest:   5,
		},
		{
			name:       "same-day repeat leaves streak alone",
			before:     Stats{Streak: 4, BestStreak: 4, LastPlayed: "2024-01-02"},
			date:       "2024-01-02",
			wantStreak: 4,
			wantBest:   4,
		},
		{
			name:       "month boundary counts as consecutive",
			before:     Stats{Streak: 2, BestStreak: 2, LastPlayed: "2024-01-31"},
			date:       "2024-02-01",
			wantStreak: 3,
			wantBest:   3,
		},
		{
			name:       "best streak never drops",
			before:     Stats{Streak: 1, BestStreak: 9, LastPlayed: "2024-01-01"},
			date:       "2024-01-02",
			wantStreak: 2,
			wantBest:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{Stats: tt.before}
			wonBefore, playedBefore := u.Stats.GamesWon, u.Stats.GamesPlayed

			ApplyOutcome(&u, tt.date, OutcomeWon)

			st := u.Stats
			if st.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", st.Streak, tt.wantStreak)
			}
			if st.BestStreak != tt.wantBest {
				t.Errorf("BestStreak = %d, want %d", st.BestStreak, tt.wantBest)
			}
			if st.GamesWon != wonBefore+1 || st.GamesPlayed != playedBefore+1 {
				t.Errorf("counters = %d/%d, want %d/%d", st.GamesWon, st.GamesPlayed, wonBefore+1, playedBefore+1)
			}
			if st.LastPlayed != tt.date {
				t.Errorf("LastPlayed = %q, want %q", st.LastPlayed, tt.date)
			}
			if st.BestStreak < st.Streak {
				t.Error("invariant broken: BestStreak < Streak")
			}
		})
	}
}

func TestApplyOutcomeLoss(t *testing.T) {
	u := User{Stats: Stats{Streak: 6, BestStreak: 6, GamesPlayed: 10, GamesWon: 8, LastPlayed: "2024-01-01"}}

	ApplyOutcome(&u, "2024-01-02", OutcomeLost)

	st := u.Stats
	if st.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after a loss", st.Streak)
	}
	if st.BestStreak != 6 {
		t.Errorf("BestStreak = %d, want unchanged 6", st.BestStreak)
	}
	if st.GamesPlayed != 11 || st.GamesWon != 8 {
		t.Errorf("counters = %d played / %d won, want 11/8", st.GamesPlayed, st.GamesWon)
	}
	if st.LastPlayed != "2024-01-02" {
		t.Errorf("LastPlayed = %q, want 2024-01-02", st.LastPlayed)
	}
}

func TestIsNextDay(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2024-01-01", "2024-01-02", true},
		{"2024-01-31", "2024-02-01", true},
		{"2024-02-28", "2024-02-29", true}, // leap year
		{"2024-12-31", "2025-01-01", true},
		{"2024-01-01", "2024-01-03", false},
		{"2024-01-02", "2024-01-01", false},
		{"2024-01-01", "2024-01-01", false},
		{"bogus", "2024-01-01", false},
	}

	for _, tt := range tests {
		if got := isNextDay(tt.a, tt.b); got != tt.want {
			t.Errorf("isNextDay(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
