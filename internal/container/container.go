package container

import (
	"context"
	"fmt"

	"showroom/adapters/excel"
	"showroom/adapters/source"
	"showroom/app"
	"showroom/domain/vehicle"
	"showroom/internal"
	"showroom/internal/config"
	"showroom/internal/errors"
	"showroom/internal/format"
	"showroom/internal/richtext"
	"showroom/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Data access
	Schema    vehicle.Schema
	Source    ports.Source
	Reader    *excel.DataReader
	Inventory *app.InventoryService

	// Presentation
	Presenter *app.Presenter
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLevel(cfg.Log.Level))
	return NewWithLogger(cfg, logger)
}

// NewWithLogger builds the container around an existing logger
func NewWithLogger(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	schema := vehicle.DefaultSchema()
	if cfg.Data.SchemaFile != "" {
		loaded, err := vehicle.LoadSchema(cfg.Data.SchemaFile)
		if err != nil {
			return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "failed to load schema file %s", cfg.Data.SchemaFile))
		}
		schema = loaded
		logger.Info("[Container] column schema loaded from %s", cfg.Data.SchemaFile)
	}
	c.Schema = schema

	c.Source = source.New(cfg.Data.Source, cfg.Data.FetchTimeout, logger)
	c.Reader = excel.NewDataReader(excel.ExcelConfig{SheetName: cfg.Data.SheetName}, logger)
	c.Inventory = app.NewInventoryService(c.Source, c.Reader, schema, logger)

	formatter := format.NewFormatter(cfg.Display.Locale, cfg.Display.CurrencySymbol, cfg.Display.MileageUnit)
	c.Presenter = app.NewPresenter(schema, formatter, richtext.NewRenderer())

	return c, nil
}

// Warm loads the inventory ahead of the first request. A failure is logged
// and left for the next caller to retry.
func (c *Container) Warm(ctx context.Context) {
	records, err := c.Inventory.Records(ctx)
	if err != nil {
		c.Logger.Warn("[Container] inventory warm-up failed: %v", err)
		return
	}
	c.Logger.Info("[Container] inventory warm-up loaded %d vehicles", len(records))
}

// Shutdown flushes buffered log output
func (c *Container) Shutdown() {
	c.Logger.Sync()
}
