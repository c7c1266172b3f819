package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/cafes-service/cmd/api/config"
	"github.com/cafes-service/cmd/api/database"
	"github.com/cafes-service/cmd/api/formtoken"
	cafehttp "github.com/cafes-service/cmd/api/http"
	"github.com/cafes-service/cmd/api/inmemory"
	"github.com/cafes-service/cmd/api/logger"
	"github.com/cafes-service/cmd/api/notifications"
	"github.com/rs/zerolog/log"
)

type repository interface {
	cafe.Repository
	Close() error
}

func main() {
	err := run()
	if err != nil {
		log.Error().Err(err).Msg("cafes service stopped")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ntfy := notifications.NewNtfy(cfg.NotificationsEnabled, cfg.NotificationsURL, &http.Client{})
	cafeService := cafe.NewService(store, ntfy, cfg.NotificationsTimeout)
	cafeHandler := cafehttp.NewCafeHandler(cafeService, formtoken.NewIssuer(cfg.SecretKey, cfg.FormTokenTTL))

	//create and init http server:
	server := cafehttp.NewServer(cafehttp.ServerConfig{Port: cfg.Port}, cafeHandler)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", cfg.StorageDriver).Msg("listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("unexpected http server error: %w", err)
		}
		close(serverErr)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case sig := <-sc:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, shutdownRelease := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	log.Info().Msg("graceful shutdown complete")
	return nil
}

/* Opens the configured storage. Postgres is migrated before it is used. */
func openStore(cfg config.Config) (repository, error) {
	if cfg.StorageDriver == config.StorageMemory {
		store, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, fmt.Errorf("creating in-memory store: %w", err)
		}
		return store, nil
	}

	//connect to db:
	dbObject, err := database.ConnectDb(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting with db: %w", err)
	}

	//apply migrations:
	store := database.NewStore(dbObject)
	err = database.MigrationUp(store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return store, nil
}
