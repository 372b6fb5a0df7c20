package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/grading"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in         io.Reader
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	settings   *config.Model
	duplicates grading.DuplicatePolicy
}

// NewApp is the constructor for the main application. Results are written
// to outW, logs to logW, and the interactive menu reads from in. The loader
// reads appConfig.ConfigPath; it may be nil when no config file is used.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings := config.Default()
	if appConfig.ConfigPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("no loader available for config file %s", appConfig.ConfigPath)
		}
		fileModel, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = settings.Merge(fileModel)
		logger.Debug("Configuration file merged.", "path", appConfig.ConfigPath)
	}
	settings = settings.Merge(appConfig.overrides())

	duplicates, err := grading.ParseDuplicatePolicy(settings.Policy.DuplicateSubmissions)
	if err != nil {
		return nil, err
	}
	if err := grading.ValidateEdges(settings.Policy.HistogramBins); err != nil {
		return nil, err
	}
	logger.Debug("Settings resolved.",
		"students", settings.Sources.StudentsPath,
		"assignments", settings.Sources.AssignmentsPath,
		"submissions", settings.Sources.SubmissionsDir,
		"duplicates", duplicates.String(),
	)

	return &App{
		in:         in,
		outW:       outW,
		logger:     logger,
		config:     appConfig,
		settings:   settings,
		duplicates: duplicates,
	}, nil
}

// Settings returns the effective, merged settings. This is primarily for testing.
func (a *App) Settings() *config.Model {
	return a.settings
}
