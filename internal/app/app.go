package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/hcl"
	"github.com/specialistvlad/mgcards/internal/yamlconfig"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
}

// defaultLoaders is the list of setup formats understood by the binary.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlconfig.NewLoader()}
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. Without explicit loaders both HCL and YAML setups
// are read.
func NewApp(outW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
