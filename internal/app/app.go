package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/backend"
	"github.com/marianozunino/share/internal/config"
	"github.com/marianozunino/share/internal/handler"
	"github.com/marianozunino/share/internal/logging"
	middie "github.com/marianozunino/share/internal/middleware"
	"github.com/marianozunino/share/internal/session"
)

// App represents the application
type App struct {
	server *echo.Echo
	config *config.Config
	store  *session.Store
}

// New creates a new application instance from a config file
func New(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new application instance from an already loaded configuration
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.Port).
		Str("upload_url", cfg.UploadURL).
		Str("list_url", cfg.ListURL).
		Str("download_base_url", cfg.DownloadBaseURL).
		Str("max_size", cfg.MaxSizeLabel()).
		Dur("request_timeout", cfg.RequestTimeout).
		Dur("session_ttl", cfg.SessionTTL).
		Bool("metrics", cfg.MetricsEnabled).
		Msg("Configuration loaded")

	client := backend.NewClient(cfg)
	store := session.NewStore(client, cfg.MaxSizeLabel(), cfg.SessionCacheSize, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Uploads are streamed through to the backend while the browser is still sending
	e.Server.ReadTimeout = 10 * time.Minute
	e.Server.WriteTimeout = 10 * time.Minute
	e.Server.IdleTimeout = 15 * time.Minute
	e.Server.ReadHeaderTimeout = 30 * time.Second

	app := &App{
		server: e,
		config: cfg,
		store:  store,
	}

	e.Use(middie.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middie.SecurityHeaders())
	if cfg.MetricsEnabled {
		e.Use(middie.Metrics())
	}

	registerRoutes(e, app)
	return app, nil
}

// ServeHTTP lets the app be driven without a listener
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.server.ServeHTTP(w, r)
}

// Start starts the application
func (a *App) Start() {
	serverAddr := fmt.Sprintf(":%d", a.config.Port)

	go func() {
		if err := a.server.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
		}
	}()

	log.Info().Str("addr", serverAddr).Msg("Server started")
}

// Stop drops every browser session
func (a *App) Stop() {
	a.store.Purge()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// registerRoutes registers all HTTP routes
func registerRoutes(e *echo.Echo, app *App) {
	h := handler.NewHandler(app.store)

	e.GET("/healthz", h.HandleHealth)
	if app.config.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	pages := e.Group("", middie.Session(app.store, app.config.SessionTTL))
	pages.GET("/", h.HandleHome)
	pages.POST("/upload", h.HandleUpload)
	pages.POST("/refresh", h.HandleRefresh)
	pages.POST("/reset", h.HandleReset)
	pages.GET("/files/:id/download", h.HandleDownload)
}
