package statuses

// Session lifecycle statuses stored in the sessions collection.
const (
	StatusInProgress = "in_progress"
	StatusSolved     = "solved"
	StatusFailed     = "failed"
)
