package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/treasuryfx/currency-api/internal/apiserver"
	"github.com/treasuryfx/currency-api/internal/catalog"
	"github.com/treasuryfx/currency-api/internal/config"
	"github.com/treasuryfx/currency-api/internal/converter"
	"github.com/treasuryfx/currency-api/internal/logger"
	"github.com/treasuryfx/currency-api/internal/prometrics"
	"github.com/treasuryfx/currency-api/internal/validator"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg := config.New()

	logger.InitLogger(logger.Config{Level: cfg.LogLevel})

	// no error handling for now
	// check https://github.com/uber-go/zap/issues/991
	//nolint: errcheck
	defer zap.L().Sync()

	var (
		cat *catalog.Catalog
		err error
	)

	if cfg.RatesFile != "" {
		cat, err = catalog.FromFile(cfg.RatesFile, cfg.SnapshotDate)
	} else {
		cat, err = catalog.New(cfg.SnapshotDate)
	}

	if err != nil {
		zap.L().With(zap.Error(err)).Panic("error building rate catalog")
	}

	zap.L().Info("rate catalog ready",
		zap.Int("currencies", len(cat.Currencies())),
		zap.String("snapshot", cfg.SnapshotDate))

	s := apiserver.New(
		apiserver.Config{BindAddress: cfg.BindAddress},
		validator.New(cat),
		converter.New(cat),
		prometrics.New(),
	)

	if err := s.Run(ctx); err != nil {
		zap.L().With(zap.Error(err)).Panic("error running server")
	}
}
