package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"wordle_backend/internal/adapters"
	"wordle_backend/internal/bootstrap"
	authDelivery "wordle_backend/internal/delivery/auth"
	puzzleDelivery "wordle_backend/internal/delivery/puzzle"
	"wordle_backend/internal/domain/words"
	ownMiddleware "wordle_backend/internal/middleware"
)

type mainDeliveryHandler struct {
	auth   *authDelivery.AuthHandler
	puzzle *puzzleDelivery.PuzzleHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, *cfg)
	defer databaseAdapters.mongoAdapter.Close(ctx)
	defer databaseAdapters.redisAdapter.Close(ctx)

	// The word list is the one fatal dependency: an empty vocabulary
	// must stop the server, not degrade to a wrong daily word.
	wordList, err := words.LoadFile(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		logger.Fatal("Failed to load word list", zap.Error(err))
	}
	logger.Infof("Loaded %d words from %s", wordList.Len(), cfg.WordsFile)

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(ctx, *cfg, logger, wordList, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	if cfg.ServerPort == "" {
		port = ":8080"
	}
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/register", h.auth.Register)
	r.Post("/login", h.auth.Login)
	r.Delete("/logout", h.auth.Logout)
	r.Get("/me", h.auth.Me)
	r.Post("/hardMode", h.auth.SetHardMode)

	r.Get("/daily", h.puzzle.HandleDaily)
	r.Post("/guess", h.puzzle.HandleGuess)
	r.Get("/solvedDates", h.puzzle.HandleSolvedDates)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(&cfg)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(&cfg)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

func initializeDeliveryHandlers(
	ctx context.Context,
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	wordList *words.List,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	authDeliveryHandler := authDelivery.NewAuthHandler(cfg, databaseAdapters.redisAdapter, databaseAdapters.mongoAdapter, log)
	puzzleDeliveryHandler := puzzleDelivery.NewPuzzleHandler(cfg, log, databaseAdapters.mongoAdapter, wordList, authDeliveryHandler)

	sessionStorage := puzzleDeliveryHandler.SessionStorage()
	if err := sessionStorage.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create session indexes", zap.Error(err))
	}

	return &mainDeliveryHandler{
		auth:   authDeliveryHandler,
		puzzle: puzzleDeliveryHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second) // give connections time to close
}
