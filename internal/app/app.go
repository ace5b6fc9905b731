package app

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	log "github.com/sirupsen/logrus"

	"hashtagset/internal/catalog"
	"hashtagset/internal/config"
)

type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Catalog *catalog.Catalog
}

// Options tweaks App construction for callers that need to override output.
type Options struct {
	LogOutput io.Writer // defaults to os.Stderr
	Verbose   bool      // forces debug level
}

func NewApp(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{Config: cfg}
	if err := app.initLogger(opts); err != nil {
		return nil, err
	}
	if err := app.initCatalog(); err != nil {
		return nil, err
	}

	app.Logger.WithField("data_dir", cfg.DataDir).Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initLogger(opts Options) error {
	logger := log.New()
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	level, err := log.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	a.Logger = logger
	return nil
}

func (a *App) initCatalog() error {
	cfg := a.Config
	catalogOpts := []catalog.Option{
		catalog.WithReservedName(cfg.ReservedCategory),
		catalog.WithExtension(cfg.Extension),
		catalog.WithMaxCount(cfg.MaxHashtags),
		catalog.WithLogger(a.Logger),
	}
	if cfg.Seed != 0 {
		catalogOpts = append(catalogOpts, catalog.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}

	c, err := catalog.New(cfg.DataDir, catalogOpts...)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}
	a.Catalog = c
	return nil
}
