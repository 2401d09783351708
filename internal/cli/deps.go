package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/riordanpawley/weekplan/internal/config"
	"github.com/riordanpawley/weekplan/internal/logging"
	"github.com/riordanpawley/weekplan/internal/services/planner"
	"github.com/riordanpawley/weekplan/internal/storage"
	"github.com/riordanpawley/weekplan/internal/types"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config     *config.Config
	ConfigPath string // file the config came from, "" for defaults
	KV         storage.KV
	Themes     *storage.ThemeRepo
	Store      *planner.Service
	Logger     *log.Logger

	closers []io.Closer
}

// NewDependencies opens storage and logging for cfg and loads the task
// collection.
func NewDependencies(cfg *config.Config, configPath string, verbose bool) (*Dependencies, error) {
	logger, logFile, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Path:    cfg.LogPath(),
		Verbose: verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	kv, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := planner.New(
		storage.NewTaskRepo(kv, logger),
		planner.WithStrictReassign(cfg.Schedule.StrictReassign),
		planner.WithLogger(logger),
	)
	logger.Debug("storage opened", "backend", cfg.Storage.Backend, "dir", cfg.Storage.Dir, "tasks", store.Len())

	return &Dependencies{
		Config:     cfg,
		ConfigPath: configPath,
		KV:         kv,
		Themes:     storage.NewThemeRepo(kv),
		Store:      store,
		Logger:     logger,
		closers:    []io.Closer{kv, logFile},
	}, nil
}

// Theme returns the stored theme, falling back to the configured one
func (d *Dependencies) Theme() types.Theme {
	return d.Themes.Load(types.Theme(d.Config.UI.Theme))
}

// Close releases storage and the log file
func (d *Dependencies) Close() error {
	var errs []error
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}
