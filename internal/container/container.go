package container

import (
	"context"
	"fmt"

	"mbticonsultant/adapters/assets"
	"mbticonsultant/adapters/table"
	"mbticonsultant/app"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/config"
	"mbticonsultant/internal/errors"
	"mbticonsultant/internal/metrics"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	Metrics *metrics.Metrics

	// Adapters
	Source *table.DataReader
	Assets *assets.Store

	// Services
	RenderService *app.RenderService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}

	source, err := table.NewDataReader(table.SourceConfig{
		FilePath: cfg.Data.File,
		Encoding: cfg.Data.Encoding,
		Sheet:    cfg.Data.Sheet,
	}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create table source")
	}
	c.Source = source

	c.Assets = assets.NewStore(assets.Config{
		IconDir:    cfg.Assets.IconDir,
		PairsImage: cfg.Assets.PairsImage,
	}, logger)

	c.RenderService = app.NewRenderService(c.Source, c.Assets, c.Metrics, logger)
	return c, nil
}

// DefaultStyle is the plot style used when a request does not choose one
func (c *Container) DefaultStyle() periodic.Style {
	return periodic.Style{Font: c.Config.Plot.Font, Scale: c.Config.Plot.Scale}
}

// Verify loads the table once and checks that it yields a catalog. A table that
// cannot be read is fatal at startup.
func (c *Container) Verify(ctx context.Context) ([]periodic.TypeCode, error) {
	catalog, err := c.RenderService.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Assets.CheckSupplementary(); err != nil {
		c.Logger.Warn("[Container] supplementary image unavailable: %v", err)
	}
	c.Logger.Info("[Container] %s loaded with %d types", c.Source.Path(), len(catalog))
	return catalog, nil
}

// Health reports whether the table can still be loaded
func (c *Container) Health(ctx context.Context) error {
	_, err := c.Source.Load(ctx)
	return err
}

// Shutdown flushes buffered logs
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.Info("[Container] shutting down")
	if err := c.Logger.Sync(); err != nil {
		c.Logger.Debug("[Container] log sync: %v", err)
	}
	return nil
}
