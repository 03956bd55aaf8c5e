package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/gradebook/internal/bridge"
	"github.com/shhac/gradebook/internal/command"
	"github.com/shhac/gradebook/internal/logging"
	"github.com/shhac/gradebook/internal/model"
	"github.com/shhac/gradebook/internal/storage"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp   fyne.App
	config    *Config
	logger    *slog.Logger
	logCloser io.Closer
	store     storage.Repository
	commands  *command.Handler
	bridge    *bridge.Server
	status    *model.StatusState
}

// New creates a new App. fyneApp may be nil in headless mode. A storage location that cannot be
// resolved is returned as a configuration error and must end the process.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, logCloser, err := logging.InitLogger("gradebook", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger, logCloser)
}

// NewWithLogger is New with a caller-supplied logger. logCloser may be nil.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger, logCloser io.Closer) (*App, error) {
	logger.Info("initializing Gradebook",
		slog.Bool("debug", cfg.Debug),
		slog.Bool("headless", cfg.Headless),
		slog.String("storage_path", cfg.StoragePath),
		slog.Bool("fyne_storage", cfg.FyneStorage),
	)

	store, err := storage.NewDocumentStore(appContext(fyneApp, cfg), logger)
	if err != nil {
		if logCloser != nil {
			logCloser.Close()
		}
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	a := &App{
		fyneApp:   fyneApp,
		config:    cfg,
		logger:    logger,
		logCloser: logCloser,
		store:     store,
		commands:  command.NewHandler(store, logger),
		status:    model.NewStatusState(),
	}
	_ = a.status.Location.Set(store.Locate())

	if cfg.BridgeAddr != "" {
		a.bridge = bridge.NewServer(a.commands, logger)
		addr, err := a.bridge.Start(cfg.BridgeAddr)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to start document bridge: %w", err)
		}
		_ = a.status.BridgeAddress.Set(addr.String())
	}

	logger.Info("application initialized successfully")
	return a, nil
}

// appContext picks where the storage root comes from. Windowed and headless
// runs share the platform data directory unless a path is given or Fyne
// storage is asked for explicitly.
func appContext(fyneApp fyne.App, cfg *Config) storage.AppContext {
	switch {
	case cfg.StoragePath != "":
		return storage.DirContext(cfg.StoragePath)
	case cfg.FyneStorage && fyneApp != nil:
		return storage.NewFyneContext(fyneApp.Storage())
	default:
		return storage.PlatformContext{AppID: AppID}
	}
}

// Run shows the window and runs the Fyne event loop until it closes.
func (a *App) Run(window fyne.Window) {
	a.logger.Info("starting application")
	window.ShowAndRun()
	a.Close()
}

// Serve blocks until ctx is done. Used in headless mode where the bridge is
// the only way in.
func (a *App) Serve(ctx context.Context) {
	addr, _ := a.status.BridgeAddress.Get()
	a.logger.Info("running headless", slog.String("bridge", addr))
	<-ctx.Done()
	a.Close()
}

// Close stops the bridge and closes the log file.
func (a *App) Close() {
	if a.bridge != nil {
		a.bridge.Stop()
		a.bridge = nil
	}
	if a.logCloser != nil {
		a.logCloser.Close()
		a.logCloser = nil
	}
}

// Status returns the UI status state.
func (a *App) Status() *model.StatusState {
	return a.status
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Commands returns the document command handler.
func (a *App) Commands() *command.Handler {
	return a.commands
}

// Storage returns the document repository.
func (a *App) Storage() storage.Repository {
	return a.store
}

// FyneApp returns the underlying Fyne application instance, nil when headless.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
