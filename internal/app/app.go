package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/priteshGolakiya/Interview-Questions/internal/config"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/answer"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
	"github.com/priteshGolakiya/Interview-Questions/internal/transport/middleware"
	"github.com/priteshGolakiya/Interview-Questions/internal/transport/rest"
)

// Services groups the application services built over one store.
type Services struct {
	Categories *category.Service
	Questions  *question.Service
	Answers    *answer.Service
}

// NewServices builds the services over store.
func NewServices(logger *slog.Logger, store *Store) *Services {
	return &Services{
		Categories: category.NewService(logger, store.Categories, store.Questions, store.Answers, store.Tx),
		Questions:  question.NewService(logger, store.Categories, store.Questions, store.Answers, store.Tx),
		Answers:    answer.NewService(logger, store.Answers, store.Questions, store.Tx),
	}
}

// NewHandler builds the routed HTTP handler with the middleware stack.
func NewHandler(cfg *config.Config, logger *slog.Logger, store *Store, svcs *Services) http.Handler {
	mux := rest.NewRouter(rest.Handlers{
		Categories: rest.NewCategoryHandler(svcs.Categories, logger),
		Questions:  rest.NewQuestionHandler(svcs.Questions, logger),
		Answers:    rest.NewAnswerHandler(svcs.Answers, logger),
		Health:     rest.NewHealthHandler(store.Tx, store.Driver, BuildVersion()),
	}, cfg.Server.ReadOnly)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.BodyLimit),
	)(mux)
}

// Run is the application entry point. It loads configuration, opens the
// store, and serves HTTP until ctx is cancelled, then shuts down within
// the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.Bool("read_only", cfg.Server.ReadOnly),
	)

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, store, NewServices(logger, store)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
