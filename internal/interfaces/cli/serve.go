package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/application/extraction"
	"github.com/marksentry/marksentry/internal/config"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/prometheus"
	httpapi "github.com/marksentry/marksentry/internal/interfaces/http"
	"github.com/marksentry/marksentry/internal/interfaces/http/handlers"
)

func newServeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, log)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, log logging.Logger) error {
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
	if ex, err := extraction.NewExtractor(cfg.Extraction, log); err != nil {
		log.Warn("document extraction disabled", logging.Err(err))
	} else {
		extractor = ex
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		CompareHandler: handlers.NewCompareHandler(svc),
		ExtractHandler: handlers.NewExtractHandler(extractor, svc, metrics, cfg.Server.MaxUploadBytes),
		LedgerHandler:  handlers.NewLedgerHandler(store, svc, cfg.Server.MaxUploadBytes),
		HealthHandler:  handlers.NewHealthHandler(Version, nil),
		Logger:         log,
		Metrics:        metrics,
		CORSOrigins:    cfg.Server.CORSOrigins,
	})
	srv := httpapi.NewServer(cfg.Server, router, log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watchDone := make(chan struct{})
	if cfg.Ledger.Watch {
		go func() {
			defer close(watchDone)
			if err := store.Watch(ctx.Done()); err != nil {
				log.Warn("ledger watch stopped", logging.Err(err))
			}
		}()
	} else {
		close(watchDone)
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
	<-watchDone
	return <-errCh
}
