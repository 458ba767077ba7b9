package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
	v1Http "github.com/amm-ar03/Point-of-Sale-System/internal/delivery/v1/http"
	"github.com/amm-ar03/Point-of-Sale-System/internal/infrastructure/journal"
	"github.com/amm-ar03/Point-of-Sale-System/internal/infrastructure/refresh"
	"github.com/amm-ar03/Point-of-Sale-System/internal/repository/backend"
	redisRepo "github.com/amm-ar03/Point-of-Sale-System/internal/repository/redis"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/clients"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/closer"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Run собирает терминал и запускает его до сигнала завершения.
func Run(cfg *config.Config, log logger.Logger) error {
	shutdownCloser := closer.NewCloser(0)

	backendClient := backend.NewClient(clients.NewBackendHTTPClient(cfg.Backend), cfg.Backend, log)
	productRepo := backend.NewProductRepo(backendClient)
	orderRepo := backend.NewOrderRepo(backendClient)

	var snapshotRepo usecase.SnapshotRepository
	if cfg.Redis.Enabled {
		redisClient := clients.NewRedisClient(cfg.Redis)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx)
		cancel()
		if err != nil {
			// кэш снапшотов — удобство, а не зависимость: работаем без него
			log.Warnf("redis unavailable, snapshot cache disabled: %v", err)
		} else {
			snapshotRepo = redisRepo.NewSnapshotRepo(redisClient, cfg.Redis, log)
			shutdownCloser.Add(func(ctx context.Context) error {
				return redisClient.Client.Close()
			})
		}
	}

	catalogUC := usecase.NewCatalogUC(productRepo, snapshotRepo, log)

	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := catalogUC.WarmStart(warmCtx)
	warmCancel()
	if err != nil {
		return err
	}

	cartUC := usecase.NewCartUC(catalogUC, cfg.Pos.TaxRate)
	lookupUC := usecase.NewLookupUC(productRepo, catalogUC, cartUC, log)

	var saleJournal usecase.SaleJournal
	if cfg.Kafka.Enabled {
		producer, err := journal.NewProducer(log, cfg.Kafka)
		if err != nil {
			return err
		}
		saleJournal = producer
		shutdownCloser.Add(func(ctx context.Context) error {
			return producer.Close()
		})
	}

	orderUC := usecase.NewOrderUC(cartUC, orderRepo, saleJournal, catalogUC, log)

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	if cfg.Pos.RefreshInterval > 0 {
		worker := refresh.NewWorker(catalogUC, cfg.Pos.RefreshInterval, log)
		worker.Start(runCtx)
		shutdownCloser.Add(func(ctx context.Context) error {
			worker.Stop()
			return nil
		})
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, lookupUC, orderUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	shutdownCloser.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("POS terminal API started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	runCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := shutdownCloser.Close(shutdownCtx); err != nil {
		log.Warnf("shutdown finished with errors: %v", err)
	} else {
		log.Infof("Application shutdown complete")
	}

	return appErr
}
