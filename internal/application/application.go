package application

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/eugenenazirov/party-planner/internal/api"
	"github.com/eugenenazirov/party-planner/internal/catalog"
	"github.com/eugenenazirov/party-planner/internal/cli"
	"github.com/eugenenazirov/party-planner/internal/config"
	"github.com/eugenenazirov/party-planner/internal/party"
	"github.com/eugenenazirov/party-planner/internal/web"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	cfg        config.Config
	catalog    catalog.Catalog
	calculator party.Calculator
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	items, err := catalog.NewMemoryCatalog(catalog.DefaultItems())
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	calc := party.New()
	handler := api.NewHandler(calc, items)
	router := BuildRootHandler(cfg, handler, web.NewPage(calc, items, cfg.Label, logger), logger)

	return &App{
		cfg:        cfg,
		catalog:    items,
		calculator: calc,
		handler:    handler,
		router:     router,
		logger:     logger,
		server:     NewServer(cfg, router),
	}, nil
}

// BuildRootHandler mounts the HTML page and the JSON API behind one middleware chain.
func BuildRootHandler(cfg config.Config, handler *api.Handler, page http.Handler, logger *zap.Logger) http.Handler {
	return api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithPage(page),
	)
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr), zap.String("label", a.cfg.Label))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// RunPrompt runs one terminal session against the application's catalog.
func (a *App) RunPrompt(in io.Reader, out io.Writer, preset string) error {
	prompt := cli.NewPrompt(a.calculator, a.catalog, a.cfg.Label, a.logger, in, out)
	result, err := prompt.Run(preset)
	if err != nil {
		return err
	}
	a.logger.Debug("party code computed",
		zap.Int("base_code", result.BaseCode),
		zap.Int("final_code", result.FinalCode),
		zap.Int("items", len(result.SelectedItems)),
	)
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}
