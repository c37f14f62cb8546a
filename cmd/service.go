package cmd

import (
	"context"
	"fmt"

	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/diffsync"
	"inventory-sync/core/logger"
	"inventory-sync/core/storage"
	"inventory-sync/feature/inventory"
	invdb "inventory-sync/feature/inventory/database"
	"inventory-sync/feature/inventory/snapshot"

	"go.uber.org/zap"
)

// buildService wires the configured source, destination and exporter into an
// inventory service.
func buildService(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*inventory.Service, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var source diffsync.Populator
	if cfg.Inventory.SourceObject != "" {
		source = snapshot.NewObjectAdapter(client, cfg.Storage.Bucket, cfg.Inventory.SourceObject, logg)
	} else {
		source = snapshot.NewFileAdapter(cfg.Inventory.SourcePath, logg)
	}

	var destination diffsync.Populator
	switch cfg.Inventory.Destination {
	case config.DestinationSnapshot:
		destination = snapshot.NewFileAdapter(cfg.Inventory.DestinationPath, logg)
	default:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		adapter := invdb.NewAdapter(db, logg)
		if err := adapter.Migrate(ctx); err != nil {
			return nil, err
		}
		logg.Info("Connected to inventory database", zap.String("driver", cfg.Database.Driver))
		destination = adapter
	}

	exporter := snapshot.NewObjectAdapter(client, cfg.Storage.Bucket, cfg.Inventory.ExportObject, logg)
	return inventory.NewService(source, destination, logg, inventory.WithExporter(exporter)), nil
}

// setup loads configuration and the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}
