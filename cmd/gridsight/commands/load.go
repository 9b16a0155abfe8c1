package commands

import (
	"context"
	"fmt"

	"github.com/wonny/gridsight/internal/reliability"
	"github.com/wonny/gridsight/internal/reliability/source"
	"github.com/wonny/gridsight/pkg/config"
	"github.com/wonny/gridsight/pkg/database"
	"github.com/wonny/gridsight/pkg/logger"
)

// loadDataset wires config, logger and the configured source, then loads
// the dataset once. Every subcommand goes through here.
func loadDataset(ctx context.Context) (*reliability.Dataset, *config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if datasetPath != "" {
		cfg.Dataset.Source = "csv"
		cfg.Dataset.Path = datasetPath
	}
	if category != "" {
		cfg.Dataset.Category = category
	}

	log := logger.New(cfg)

	cat, err := reliability.ParseCategory(cfg.Dataset.Category)
	if err != nil {
		return nil, nil, nil, err
	}

	var src source.Source
	switch cfg.Dataset.Source {
	case "csv":
		src = source.NewCSVSource(cfg.Dataset.Path, cat, log.Zerolog())
	case "postgres":
		db, err := database.New(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		src = source.NewPostgresSource(db.Pool, cfg.Dataset.Table, cat, log.Zerolog())
	default:
		return nil, nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	return ds, cfg, log, nil
}
