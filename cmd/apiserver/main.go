// Command apiserver runs the comparison API server headless, configured from
// the environment or the file named by MARKSENTRY_CONFIG.  It is the
// container entry point; the marksentry CLI offers the same server behind
// "marksentry serve" plus offline tooling.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/application/extraction"
	"github.com/marksentry/marksentry/internal/config"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/prometheus"
	httpapi "github.com/marksentry/marksentry/internal/interfaces/http"
	"github.com/marksentry/marksentry/internal/interfaces/http/handlers"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfg *config.Config
		err error
	)
	if path := os.Getenv("MARKSENTRY_CONFIG"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	metrics := prometheus.New()
	store := ledger.NewStore(cfg.Ledger.Path, log, ledger.WithReloadHook(func(count int) {
		metrics.LedgerRecords.Set(float64(count))
		metrics.LedgerReloads.Inc()
	}))
	if err := store.Load(); err != nil {
		return err
	}

	svc := comparison.NewService(store, log, metrics, cfg.Engine.DefaultThreshold)

	var extractor handlers.DocumentExtractor
	if ex, exErr := extraction.NewExtractor(cfg.Extraction, log); exErr != nil {
		log.Warn("document extraction disabled", logging.Err(exErr))
	} else {
		extractor = ex
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		CompareHandler: handlers.NewCompareHandler(svc),
		ExtractHandler: handlers.NewExtractHandler(extractor, svc, metrics, cfg.Server.MaxUploadBytes),
		LedgerHandler:  handlers.NewLedgerHandler(store, svc, cfg.Server.MaxUploadBytes),
		HealthHandler:  handlers.NewHealthHandler(version, nil),
		Logger:         log,
		Metrics:        metrics,
		CORSOrigins:    cfg.Server.CORSOrigins,
	})
	srv := httpapi.NewServer(cfg.Server, router, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Ledger.Watch {
		go func() {
			if err := store.Watch(ctx.Done()); err != nil {
				log.Warn("ledger watch stopped", logging.Err(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	if err := srv.Stop(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
