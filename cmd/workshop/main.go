package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/juvelir/workshop/internal/adapters/api/rest"
	"github.com/juvelir/workshop/internal/adapters/logger"
	"github.com/juvelir/workshop/internal/adapters/store"
	"github.com/juvelir/workshop/internal/core/config"
	"github.com/juvelir/workshop/internal/core/workshop"
)

func main() {
	if err := run(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	service := workshop.New(cfg.Workshop, storage, workshop.Logger(lgr))
	if err := service.Load(ctx); err != nil {
		return fmt.Errorf("failed load workshop state: %w", err)
	}

	server, err := rest.New(
		service,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run()
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
