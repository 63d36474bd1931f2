package puzzle

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"wordle_backend/internal/adapters"
	"wordle_backend/internal/bootstrap"
	authDelivery "wordle_backend/internal/delivery/auth"
	"wordle_backend/internal/domain/words"
	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/httpresponse"
	"wordle_backend/internal/repository"
	puzzleUC "wordle_backend/internal/usecase/puzzle"
	"wordle_backend/internal/utils"
)

type PuzzleHandler struct {
	cfg         bootstrap.Config
	log         *zap.SugaredLogger
	engine      *puzzleUC.PuzzleEngine
	sessions    *repository.MongoSessionStorage
	authHandler *authDelivery.AuthHandler
}

type GuessRequest struct {
	Guess string `json:"guess"`
}

func NewPuzzleHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongo *adapters.AdapterMongo, list *words.List, authHandler *authDelivery.AuthHandler) *PuzzleHandler {
	sessions := repository.NewMongoSessionStorage(mongo, log)
	engine := puzzleUC.NewPuzzleEngine(
		cfg,
		log,
		sessions,
		repository.NewMongoUserStorage(mongo, log),
		list,
		puzzleUC.SystemClock{},
	)
	return &PuzzleHandler{
		cfg:         cfg,
		log:         log,
		engine:      engine,
		sessions:    sessions,
		authHandler: authHandler,
	}
}

// SessionStorage exposes the mongo session store for startup wiring
// (unique index creation).
func (p *PuzzleHandler) SessionStorage() *repository.MongoSessionStorage {
	return p.sessions
}

// HandleDaily returns today's session for the caller, creating it on
// first contact.
func (p *PuzzleHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	userID := p.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	view, err := p.engine.GetOrCreateTodaySession(r.Context(), userID)
	if err != nil {
		p.log.Errorf("HandleDaily: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, "failed to load today's puzzle")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleGuess submits one guess for today's puzzle.
func (p *PuzzleHandler) HandleGuess(w http.ResponseWriter, r *http.Request) {
	userID := p.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req GuessRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		p.log.Error("HandleGuess: JSON decode error: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	result, err := p.engine.SubmitGuess(r.Context(), userID, req.Guess)
	if err != nil {
		p.writeGuessRejection(w, userID, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, result)
}

// HandleSolvedDates returns the dates the caller solved, for the
// streak calendar.
func (p *PuzzleHandler) HandleSolvedDates(w http.ResponseWriter, r *http.Request) {
	userID := p.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	dates, err := p.engine.GetSolvedDates(r.Context(), userID)
	if err != nil {
		p.log.Errorf("HandleSolvedDates: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, "failed to load solved dates")
		return
	}
	if dates == nil {
		dates = []string{}
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, dates)
}

// writeGuessRejection maps engine errors to HTTP statuses. Validation
// rejections stay 400 with a specific description; storage failures
// are 500.
func (p *PuzzleHandler) writeGuessRejection(w http.ResponseWriter, userID string, err error) {
	var hardMode *errs.HardModeViolationError
	switch {
	case errors.As(err, &hardMode):
		p.log.Infof("guess rejected for %s: %v", userID, err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, map[string]any{
			"ErrorDescription": hardMode.Error(),
			"kind":             hardMode.Kind,
			"position":         hardMode.Position,
			"letter":           hardMode.Letter,
		})
	case errors.Is(err, errs.ErrInvalidGuessLength),
		errors.Is(err, errs.ErrInvalidGuessWord),
		errors.Is(err, errs.ErrGameNotStarted),
		errors.Is(err, errs.ErrAlreadySolved),
		errors.Is(err, errs.ErrAttemptsExhausted),
		errors.Is(err, errs.ErrDuplicateGuess):
		p.log.Infof("guess rejected for %s: %v", userID, err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUserNotFound):
		p.log.Warnf("guess from unknown user %s", userID)
		httpresponse.WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
	default:
		p.log.Errorf("HandleGuess: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, "failed to save your guess")
	}
}
