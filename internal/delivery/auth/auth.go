package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wordle_backend/internal/adapters"
	"wordle_backend/internal/bootstrap"
	errs "wordle_backend/internal/errors"
	"wordle_backend/internal/httpresponse"
	"wordle_backend/internal/repository"
	authUC "wordle_backend/internal/usecase/auth"
	"wordle_backend/internal/utils"
)

type AuthHandler struct {
	cfg            bootstrap.Config
	usecaseHandler *authUC.AuthUsecaseHandler
	log            *zap.SugaredLogger
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type HardModeRequest struct {
	Enabled bool `json:"enabled"`
}

func NewAuthHandler(cfg bootstrap.Config, redis *adapters.AdapterRedis, mongo *adapters.AdapterMongo, log *zap.SugaredLogger) *AuthHandler {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	return &AuthHandler{
		cfg: cfg,
		usecaseHandler: authUC.NewUserUsecaseHandler(
			repository.NewMongoUserStorage(mongo, log),
			repository.NewSessionRedisStorage(redis.GetClient(), ttl),
		),
		log: log,
	}
}

func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.log.Error("Register: only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	requestBody, err := utils.ReadRequestBody(r)
	if err != nil {
		a.log.Error("Register: failed to read request body: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var registerData RegisterRequest
	if err := json.Unmarshal(requestBody, &registerData); err != nil {
		a.log.Error("Register: malformed JSON: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	if registerData.Username == "" || registerData.Password == "" {
		a.log.Error("Register: missing username or password")
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	sessionID, err := a.usecaseHandler.RegisterUser(r.Context(), registerData.Username, registerData.Email, registerData.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUserExists) {
			a.log.Errorf("Register: user already exists: %s", registerData.Username)
			httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "user with this name already exists")
			return
		}
		a.log.Error("Register: internal error: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.setSessionCookie(w, sessionID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.log.Error("Login: only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	requestBody, err := utils.ReadRequestBody(r)
	if err != nil {
		a.log.Error("Login: failed to read request body: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var loginData LoginRequest
	if err := json.Unmarshal(requestBody, &loginData); err != nil {
		a.log.Error("Login: malformed JSON: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	sessionID, err := a.usecaseHandler.LoginUser(r.Context(), loginData.Username, loginData.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			a.log.Errorf("Login: user not found: %s", loginData.Username)
			httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "user not found")
			return
		case errors.Is(err, errs.ErrWrongPassword):
			a.log.Errorf("Login: wrong password for user: %s", loginData.Username)
			httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "wrong password")
			return
		default:
			a.log.Error("Login: internal error: ", err)
			httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	a.setSessionCookie(w, sessionID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("sessionID")
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			a.log.Warn("Logout: no cookie provided")
			httpresponse.WriteErrorResponse(w, http.StatusBadRequest, http.ErrNoCookie.Error())
			return
		}
		a.log.Error("Logout: error retrieving cookie: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.usecaseHandler.LogoutUser(sessionCookie.Value); err != nil {
		a.log.Errorf("Logout: failed to logout sessionID=%s: %v", sessionCookie.Value, err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// Me returns the authorized user's profile with the streak snapshot.
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("sessionID")
	if err != nil {
		a.log.Warn("Me: no sessionID cookie")
		httpresponse.WriteErrorResponse(w, http.StatusUnauthorized, "sessionID cookie not found")
		return
	}

	ok, user := a.usecaseHandler.CheckAuthorized(r.Context(), sessionCookie.Value)
	if !ok {
		a.log.Warn("Me: unauthorized access attempt")
		httpresponse.WriteErrorResponse(w, http.StatusUnauthorized, "user is not authorized")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, user)
}

// SetHardMode toggles the hard-mode preference for the authorized user.
func (a *AuthHandler) SetHardMode(w http.ResponseWriter, r *http.Request) {
	userID := a.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req HardModeRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		a.log.Error("SetHardMode: JSON decode error: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.usecaseHandler.SetHardMode(r.Context(), userID, req.Enabled); err != nil {
		a.log.Errorf("SetHardMode: failed for user %s: %v", userID, err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// GetUserID resolves the session cookie to a user id. On failure it
// writes the error response itself and returns "".
func (a *AuthHandler) GetUserID(w http.ResponseWriter, r *http.Request) string {
	sessionCookie, err := r.Cookie("sessionID")
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			a.log.Warn("GetUserID: no sessionID cookie")
			httpresponse.WriteErrorResponse(w, http.StatusUnauthorized, "sessionID cookie not found")
			return ""
		}
		a.log.Error("GetUserID: error retrieving cookie: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return ""
	}

	userID, err := a.usecaseHandler.GetUserIdFromSession(sessionCookie.Value)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			a.log.Warn("GetUserID: session not found or expired")
			httpresponse.WriteErrorResponse(w, http.StatusUnauthorized, "session not found or expired")
			return ""
		}
		a.log.Error("GetUserID: internal error: ", err)
		httpresponse.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return ""
	}

	return userID
}

func (a *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "sessionID",
		Value:    sessionID,
		Expires:  time.Now().Add(time.Duration(a.cfg.SessionTTLHours) * time.Hour),
		Secure:   true,
		HttpOnly: true,
	})
}
