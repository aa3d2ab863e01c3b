package worker

// retry_cron.go
// Background goroutine that periodically replays dead-lettered email jobs.
// Uses the mailer's Circuit Breaker to avoid hammering a downed SMTP relay.

import (
	"context"
	"time"

	"github.com/josebazania/restaurantepos/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
	// MaxEmailAttempts bounds how many times one email job is tried.
	MaxEmailAttempts = 5
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB         *redis.Client
	CB          *infra.CircuitBreaker
	MaxAttempts int
	Interval    time.Duration
}

// StartRetryCron launches a background goroutine that ticks every interval
// and moves failed email jobs back to their queue while the breaker allows.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = MaxEmailAttempts
	}
	if cfg.Interval <= 0 {
		cfg.Interval = retryTickInterval
	}
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

// processRetries returns how many jobs were re-enqueued.
func processRetries(ctx context.Context, cfg RetryCronConfig) int {
	replayed := 0
	for i := 0; i < retryBatchSize; i++ {
		// checked before each job, it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker is open, skipping")
			return replayed
		}

		entry, err := PopDLQ(ctx, cfg.RDB, QueueEmail)
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to read DLQ")
			return replayed
		}
		if entry == nil {
			return replayed
		}

		if entry.Job.Attempts >= cfg.MaxAttempts {
			log.Error().
				Int("attempts", entry.Job.Attempts).
				Str("reason", entry.Reason).
				Msg("retry_cron: max attempts exceeded, parking job")
			pushDLQ(ctx, cfg.RDB, ExhaustedQueue, *entry)
			continue
		}

		if err := pushJob(ctx, cfg.RDB, QueueEmail, entry.Job); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-enqueue job")
			SendToDLQ(ctx, cfg.RDB, QueueEmail, entry.Job, entry.Reason)
			return replayed
		}
		replayed++
	}
	if replayed > 0 {
		log.Info().Int("count", replayed).Msg("retry_cron: email jobs re-enqueued")
	}
	return replayed
}
