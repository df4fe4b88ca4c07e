package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"showroom/app"
	"showroom/internal"
	"showroom/ports"
	uimw "showroom/ui/middleware"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the showroom UI application
type App struct {
	router    *chi.Mux
	inventory ports.InventoryReader
	presenter *app.Presenter
	templates *template.Template
	logger    *internal.Logger
	server    *http.Server
}

// Config holds UI application configuration
type Config struct {
	Port   string
	Logger *internal.Logger
}

// NewApp creates a new UI application
func NewApp(config Config, inventory ports.InventoryReader, presenter *app.Presenter) (*App, error) {
	logger := config.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if presenter == nil {
		presenter = app.NewPresenter(inventory.Schema(), nil, nil)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		inventory: inventory,
		presenter: presenter,
		templates: templates,
		logger:    logger,
	}

	if err := a.setupMiddleware(); err != nil {
		return nil, err
	}
	a.setupRoutes()

	port := config.Port
	if port == "" {
		port = "8080"
	}
	a.server = &http.Server{
		Addr:              ":" + port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() error {
	a.router.Use(middleware.RequestID)
	a.router.Use(uimw.RequestLogger(a.logger.Zap()))
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static files: %w", err)
	}
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	return nil
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleList)
	a.router.Get(app.DetailPath, a.handleDetail)
}

// Handler exposes the router, mainly for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	a.logger.Info("Starting showroom UI server on %s", a.server.Addr)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
