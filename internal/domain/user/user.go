package user

import "time"

type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	HardMode     bool      `json:"hard_mode" bson:"hard_mode"`
	Stats        Stats     `json:"stats" bson:"stats"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	PasswordSalt string    `json:"-" bson:"password_salt"`
}

// Stats are the streak counters owned by the user record but mutated
// only through ApplyOutcome. Invariants: BestStreak >= Streak,
// GamesWon <= GamesPlayed.
type Stats struct {
	Streak      int    `json:"streak" bson:"streak"`
	BestStreak  int    `json:"best_streak" bson:"best_streak"`
	GamesPlayed int    `json:"games_played" bson:"games_played"`
	GamesWon    int    `json:"games_won" bson:"games_won"`
	LastPlayed  string `json:"last_played,omitempty" bson:"last_played,omitempty"`
}
