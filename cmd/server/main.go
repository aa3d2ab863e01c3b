package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/infra"
	"github.com/josebazania/restaurantepos/internal/repository"
	"github.com/josebazania/restaurantepos/internal/router"
	"github.com/josebazania/restaurantepos/internal/service"
	"github.com/josebazania/restaurantepos/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	backends, err := infra.OpenBackends(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state backends")
	}
	defer backends.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := repository.NewState(backends.Store, repository.DefaultSeed())
	if err := st.Load(ctx); err != nil {
		log.Fatal().Err(err).Str("driver", backends.Store.Driver()).Msg("failed to load durable slots")
	}

	events := service.NewNotifier(service.LogObserver())
	deps := router.Deps{
		Redis:  backends.Redis,
		Events: events,
		Users:  repository.SeedUsers(),
	}

	// Kitchen tickets are optional: without a broker orders still flow.
	if cfg.AMQPURL != "" {
		cb := infra.NewCircuitBreaker(infra.DefaultCBConfig("amqp"))
		kitchen, err := infra.NewKitchenPublisher(cfg.AMQPURL, cfg.KitchenExchange, cb)
		if err != nil {
			log.Error().Err(err).Msg("kitchen publisher disabled")
		} else {
			defer kitchen.Close()
			events.Subscribe(kitchen)
			deps.Kitchen = kitchen
		}
	}

	// Invoice PDFs and emails run on the Redis worker pool. Handlers are
	// wired here (composition root) so the pool has every infra dependency.
	if backends.Redis != nil {
		mailer := infra.NewMailer(cfg, infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp")))
		dispatcher := worker.NewDispatcher(backends.Redis)
		handlers := map[string]worker.Handler{
			worker.JobInvoice: worker.NewInvoiceWorker(cfg.PDFStoragePath, dispatcher),
			worker.JobEmail:   worker.NewEmailWorker(mailer),
		}
		worker.StartWorkerPool(ctx, backends.Redis, cfg.WorkerPoolSize, handlers)
		worker.StartRetryCron(ctx, worker.RetryCronConfig{RDB: backends.Redis, CB: mailer.Breaker()})
		deps.Invoices = dispatcher
	}

	r, err := router.New(cfg, st, deps)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().
			Str("state_driver", backends.Store.Driver()).
			Msgf("restaurant POS listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// setupLogger: dev pretty console, prod JSON.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
