package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/launchrecords/launchdash/internal/appconf"
	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/launches"
	"github.com/launchrecords/launchdash/internal/logging"
	"github.com/launchrecords/launchdash/internal/metrics"
	"github.com/launchrecords/launchdash/internal/reactive"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything in it is read-only once built, so handlers may
// share it across requests.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Dataset   *launches.Dataset
	Dashboard *dashboard.Service
	Bindings  *reactive.Registry
	Renderer  dashboard.Renderer
}

// New wires the dashboard service and its reactive bindings around an
// already loaded dataset.
func New(cfg appconf.Config, logger *slog.Logger, ds *launches.Dataset) (*Application, error) {
	if ds == nil {
		return nil, fmt.Errorf("nil dataset: %w", launches.ErrEmptyDataset)
	}
	if logger == nil {
		logger = slog.Default()
	}

	svc := dashboard.NewService(ds)
	bindings, err := svc.Bindings()
	if err != nil {
		return nil, fmt.Errorf("registering chart bindings: %w", err)
	}

	minKg, maxKg := ds.PayloadBounds()
	metrics.ObserveDataset(ds.Len(), minKg, maxKg)

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Dataset:   ds,
		Dashboard: svc,
		Bindings:  bindings,
		Renderer:  dashboard.Renderer{AssetsHost: cfg.EChartsAsset},
	}, nil
}

// Load reads the configured data source and builds the Application. The
// "dataset loaded" event carries the payload bounds the slider starts from.
func Load(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	ds, err := launches.Load(ctx, cfg.DataPath)
	if err != nil {
		logging.LogError(logger, "failed to load launch data", err,
			slog.String("path", cfg.DataPath))
		return nil, err
	}

	minKg, maxKg := ds.PayloadBounds()
	logging.LogOperation(logger, "dataset loaded",
		slog.String("source", ds.Source()),
		slog.Int("records", ds.Len()),
		slog.Int("sites", len(ds.Sites())),
		slog.Float64("max_payload_kg", maxKg),
		slog.Float64("min_payload_kg", minKg))

	return New(cfg, logger, ds)
}
