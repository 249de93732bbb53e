package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"hmiq/internal/adapters/catalogfile"
	"hmiq/internal/adapters/httpapi"
	"hmiq/internal/config"
	"hmiq/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("hmiq-server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalogFlag := flag.String("catalog", cfg.Catalog.Path, "path to a catalog YAML file (default: bundled catalog)")
	portFlag := flag.Int("port", cfg.Server.Port, "port to listen on")
	flag.Parse()
	cfg.Server.Port = *portFlag

	logger := logging.New(cfg.Log, os.Stdout)

	repo, err := catalogfile.Load(*catalogFlag, logger)
	if err != nil {
		return err
	}

	api := httpapi.NewServer(cfg.Server, repo, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      api.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server",
			"addr", srv.Addr,
			"catalog", repo.Source(),
			"questionnaires", len(repo.All()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
