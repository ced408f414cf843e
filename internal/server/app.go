// Package server initializes and runs the CodeRefine API server.
// It selects a storage backend, wires services and the HTTP transport,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/coderefine/internal/logging"
	"github.com/dmitrijs2005/coderefine/internal/server/config"
	"github.com/dmitrijs2005/coderefine/internal/server/llm"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/coderefine/internal/server/services"

	hs "github.com/dmitrijs2005/coderefine/internal/server/http"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repomanager     repomanager.RepositoryManager
	userService     *services.UserService
	analysisService *services.AnalysisService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := newRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	client := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.LLMTimeout)

	us := services.NewUserService(m, cfg)
	as := services.NewAnalysisService(client, m, logger)

	return &App{
		config:          cfg,
		logger:          logger,
		repomanager:     m,
		userService:     us,
		analysisService: as,
	}, nil
}

// newRepositoryManager picks the backend: PostgreSQL when a DSN is
// configured, JSON files in the data directory otherwise.
func newRepositoryManager(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN != "" {
		return repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
	}
	return repomanager.NewJSONFileManager(cfg.DataDir)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.analysisService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err)
	}
}
