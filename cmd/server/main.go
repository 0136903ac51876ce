package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/gotrialbalance/internal/adapter/http"
	"github.com/iho/gotrialbalance/internal/adapter/http/handler"
	"github.com/iho/gotrialbalance/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/gotrialbalance/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gotrialbalance/internal/adapter/repository/redis"
	"github.com/iho/gotrialbalance/internal/balance"
	"github.com/iho/gotrialbalance/internal/infrastructure/config"
	"github.com/iho/gotrialbalance/internal/infrastructure/logger"
	"github.com/iho/gotrialbalance/internal/infrastructure/metrics"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres"
	"github.com/iho/gotrialbalance/internal/infrastructure/ratecache"
	"github.com/iho/gotrialbalance/internal/infrastructure/redis"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// Idle rate limiter entries are dropped on this interval.
const limiterCleanupInterval = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	m := metrics.New()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis backs idempotency and the shared balance cache.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	tolerance, err := cfg.Balance.Tolerance()
	if err != nil {
		return fmt.Errorf("parse rounding tolerance: %w", err)
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	chartRepo := postgresRepo.NewAccountsChartRepository(pool)
	calendarRepo := postgresRepo.NewCalendarRepository(pool)
	postingRepo := postgresRepo.NewPostingEntryRepository(pool, postgresRepo.NewRetrier(log), m)
	rateRepo := postgresRepo.NewExchangeRateRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	rateCache := ratecache.New(cfg.Balance.RateCacheTTL)

	var (
		balanceCache     usecase.BalanceCache
		idempotencyStore usecase.IdempotencyStore
	)
	if redisClient != nil {
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		if cfg.Balance.CacheEnabled {
			shared := redisRepo.NewBalanceCache(redisClient)
			balanceCache = shared

			// Rates saved on another instance bump the shared version.
			go func() {
				err := shared.Listen(ctx, func(version int64) {
					rateCache.Flush()
					log.Debug().Int64("version", version).Msg("balance cache version bumped, rate cache flushed")
				})
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("balance cache listener stopped")
				}
			}()
		}
	}

	// Initialize use cases
	rateUC := usecase.NewExchangeRateUseCase(txManager, rateRepo, rateCache, balanceCache, idGen, m, log)
	engine := balance.NewEngine(balance.Config{
		Tolerance:   tolerance,
		MaxParallel: cfg.Balance.MaxParallel,
	}, balance.NewLogObserver(log, m.StageDuration))

	balanceUC := usecase.NewTrialBalanceUseCase(engine, chartRepo, calendarRepo, postingRepo, rateUC, idGen, log).
		WithMetrics(m).
		WithDefaultRateType(cfg.Balance.DefaultRateType)
	if balanceCache != nil {
		balanceUC = balanceUC.WithCache(balanceCache, cfg.Balance.CacheTTL)
	}
	reconciliationUC := usecase.NewReconciliationUseCase(balanceUC, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst).WithMetrics(m)
	go cleanupLimiters(ctx, limiter, limiterCleanupInterval, log)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TrialBalanceHandler:   handler.NewTrialBalanceHandler(balanceUC),
		ExchangeRateHandler:   handler.NewExchangeRateHandler(rateUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		RateLimiter:           limiter,
		Metrics:               m,
		Logger:                log,
	})

	return serve(ctx, newHTTPServer(cfg, router), cfg.HTTPShutdownTimeout, log)
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

// serve runs server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func cleanupLimiters(ctx context.Context, limiter *middleware.RateLimiter, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := limiter.CleanupLimiters(interval); n > 0 {
				log.Debug().Int("removed", n).Msg("dropped idle rate limiters")
			}
		}
	}
}
