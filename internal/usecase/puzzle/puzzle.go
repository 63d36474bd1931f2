package puzzle

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wordle_backend/internal/bootstrap"
	"wordle_backend/internal/domain/puzzle"
	"wordle_backend/internal/domain/session"
	"wordle_backend/internal/domain/user"
	"wordle_backend/internal/domain/words"
	errs "wordle_backend/internal/errors"
)

type SessionStore interface {
	GetSession(ctx context.Context, userID, date string) (session.GameSession, bool, error)
	CreateSession(ctx context.Context, s session.GameSession) error
	UpdateSession(ctx context.Context, s session.GameSession) error
	GetSolvedDates(ctx context.Context, userID string) ([]string, error)
}

type UserStore interface {
	GetUserByID(ctx context.Context, id string) (user.User, bool)
	UpdateStats(ctx context.Context, userID string, stats user.Stats) error
}

// Clock is injected so session dating and daily-word selection never
// read the wall clock directly.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// PuzzleEngine composes the daily selector, the evaluator and the
// streak logic behind the two operations the HTTP layer calls.
type PuzzleEngine struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	sessions SessionStore
	users    UserStore
	list     *words.List
	selector *puzzle.Selector
	clock    Clock

	locks keyedLocks
}

func NewPuzzleEngine(cfg bootstrap.Config, log *zap.SugaredLogger, sessions SessionStore, users UserStore, list *words.List, clock Clock) *PuzzleEngine {
	return &PuzzleEngine{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		users:    users,
		list:     list,
		selector: puzzle.NewSelector(list),
		clock:    clock,
		locks:    keyedLocks{locks: make(map[string]*sync.Mutex)},
	}
}

// SessionView is what the client needs to redraw the grid.
type SessionView struct {
	Date     string               `json:"date"`
	Guesses  []session.GuessEntry `json:"guesses"`
	Attempts int                  `json:"attempts"`
	IsSolved bool                 `json:"is_solved"`
	IsFailed bool                 `json:"is_failed"`
}

// GuessResult is returned on an accepted guess. CorrectWord and Stats
// are filled only once the session is terminal.
type GuessResult struct {
	Guess       string        `json:"guess"`
	Feedback    []puzzle.Mark `json:"feedback"`
	Attempts    int           `json:"attempts"`
	IsSolved    bool          `json:"is_solved"`
	IsFailed    bool          `json:"is_failed"`
	CorrectWord string        `json:"correct_word,omitempty"`
	Stats       *user.Stats   `json:"stats,omitempty"`
}

// GetOrCreateTodaySession fetches the caller's session for today,
// creating an empty one on first contact.
func (e *PuzzleEngine) GetOrCreateTodaySession(ctx context.Context, userID string) (SessionView, error) {
	now := e.clock.Now()
	date := puzzle.DateKey(now)

	unlock := e.locks.lock(userID + "/" + date)
	defer unlock()

	s, found, err := e.sessions.GetSession(ctx, userID, date)
	if err != nil {
		return SessionView{}, errs.Storage(err)
	}
	if !found {
		s = session.New(userID, date, now)
		if err = e.sessions.CreateSession(ctx, s); err != nil {
			return SessionView{}, errs.Storage(err)
		}
		e.log.Infof("created session %s/%s", userID, date)
	}

	return toView(s), nil
}

// SubmitGuess runs the full validation chain, scores an accepted guess
// and, on a terminal transition, applies the streak outcome. The
// per-(user, date) lock makes the session read-modify-write and the
// paired stats update atomic against a concurrent double-submit.
func (e *PuzzleEngine) SubmitGuess(ctx context.Context, userID, rawGuess string) (GuessResult, error) {
	now := e.clock.Now()
	date := puzzle.DateKey(now)
	guess := normalize(rawGuess)

	unlock := e.locks.lock(userID + "/" + date)
	defer unlock()

	u, found := e.users.GetUserByID(ctx, userID)
	if !found {
		return GuessResult{}, errs.ErrUserNotFound
	}

	s, found, err := e.sessions.GetSession(ctx, userID, date)
	if err != nil {
		return GuessResult{}, errs.Storage(err)
	}
	if !found {
		return GuessResult{}, errs.ErrGameNotStarted
	}

	target := e.selector.WordForDate(now)

	if len(guess) != len(target) {
		return GuessResult{}, errs.ErrInvalidGuessLength
	}
	if !e.list.Contains(guess) {
		return GuessResult{}, errs.ErrInvalidGuessWord
	}
	if err = s.CanAccept(guess, e.cfg.MaxAttempts); err != nil {
		return GuessResult{}, err
	}
	if u.HardMode {
		if prev, ok := s.LastGuess(); ok {
			if violation := puzzle.CheckHardMode(guess, prev.Word, prev.Feedback); violation != nil {
				return GuessResult{}, violation
			}
		}
	}

	feedback := puzzle.Evaluate(guess, target)
	s.RecordGuess(guess, feedback, target, e.cfg.MaxAttempts, now)

	if err = e.sessions.UpdateSession(ctx, s); err != nil {
		return GuessResult{}, errs.Storage(err)
	}

	result := GuessResult{
		Guess:    guess,
		Feedback: feedback,
		Attempts: s.Attempts(),
		IsSolved: s.IsSolved(),
		IsFailed: s.IsFailed(),
	}

	if s.IsTerminal() {
		outcome := user.OutcomeLost
		if s.IsSolved() {
			outcome = user.OutcomeWon
		}
		user.ApplyOutcome(&u, date, outcome)
		if err = e.users.UpdateStats(ctx, userID, u.Stats); err != nil {
			return GuessResult{}, errs.Storage(err)
		}
		e.log.Infof("session %s/%s finished: %s after %d attempts", userID, date, outcome, s.Attempts())

		result.CorrectWord = target
		stats := u.Stats
		result.Stats = &stats
	}

	return result, nil
}

// GetSolvedDates lists the dates the user solved, for the calendar
// view.
func (e *PuzzleEngine) GetSolvedDates(ctx context.Context, userID string) ([]string, error) {
	dates, err := e.sessions.GetSolvedDates(ctx, userID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return dates, nil
}

func toView(s session.GameSession) SessionView {
	return SessionView{
		Date:     s.Date,
		Guesses:  s.Guesses,
		Attempts: s.Attempts(),
		IsSolved: s.IsSolved(),
		IsFailed: s.IsFailed(),
	}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
