package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/envelope-zero/savings-goals/internal/config"
	"github.com/envelope-zero/savings-goals/internal/controllers"
	"github.com/envelope-zero/savings-goals/internal/database"
	"github.com/envelope-zero/savings-goals/internal/router"
	"github.com/envelope-zero/savings-goals/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// Loads .env before anything reads the environment
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	persister, db, err := newPersister(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := store.NewMemory(persister)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := controllers.Controller{Store: s}

	r, err := router.Config(cfg, co)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("persistence", cfg.Persistence).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	log.Info().Msg("Server stopped")
}

// newPersister returns the persister configured for the store. For sqlite
// persistence, the database connection is returned so that it can be
// closed on shutdown.
func newPersister(cfg *config.Config) (store.Persister, *gorm.DB, error) {
	switch cfg.Persistence {
	case config.PersistenceFile:
		return store.FilePersister{Path: cfg.DataFile}, nil, nil

	case config.PersistenceSQLite:
		// Create data directory
		err := os.MkdirAll(filepath.Dir(cfg.DatabaseFile), os.ModePerm)
		if err != nil {
			return nil, nil, err
		}

		db, err := database.Connect(cfg.DatabaseFile)
		if err != nil {
			return nil, nil, err
		}

		return database.BlobPersister{DB: db}, db, nil
	}

	return nil, nil, nil
}
