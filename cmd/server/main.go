package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	collectionhandler "tastebook/internal/collection/handler"
	"tastebook/internal/collection/service"
	"tastebook/internal/collection/store"

	"tastebook/internal/catalog"
	"tastebook/internal/localization"
	"tastebook/internal/platform/config"
	"tastebook/internal/platform/httpserver"
	"tastebook/internal/platform/logger"
	"tastebook/internal/platform/metrics"
	"tastebook/internal/platform/postgres"
	platformredis "tastebook/internal/platform/redis"
	"tastebook/internal/platform/token"
	"tastebook/internal/qualification"
	"tastebook/internal/qualification/events"
	qualificationmetrics "tastebook/internal/qualification/metrics"
	"tastebook/internal/resolver"
	resolverhandler "tastebook/internal/resolver/handler"
	httptransport "tastebook/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Domain logic lives
// in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.ApplySchema(ctx, db); err != nil {
		log.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		// The engine runs uncached rather than not at all.
		log.Warn("redis unavailable, caches disabled", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	collectionStore := store.NewPostgres(db)
	catalogSource := catalog.NewPostgres(db)

	qMetrics := qualificationmetrics.New()
	calc := qualification.NewCalculator(catalogSource, cfg.Qualification.NearFraction, qMetrics)
	sweeper := qualification.NewSweeper(calc, collectionStore, log, qMetrics, cfg.Qualification.SweepConcurrency)

	var translator localization.Translator = localization.NewPostgres(db)
	if redisClient != nil {
		translator = localization.NewCached(translator, redisClient.Client, cfg.Qualification.TranslationCacheTTL)
	}

	var cardCache *goredis.Client
	if redisClient != nil {
		cardCache = redisClient.Client
	}
	cards := resolver.New(collectionStore, translator, cardCache, cfg.Qualification.CardCacheTTL, log)
	blocks := resolver.NewBlocks(resolver.NewPostgresBlockStore(db))

	collectionService := service.New(collectionStore, calc, log)
	validator := token.NewValidator(cfg.JWTSigningKey)

	httpMetrics := metrics.New()
	router := httptransport.NewRouter(log, httpMetrics, db,
		collectionhandler.New(collectionService, sweeper, log, cfg.AdminToken, validator),
		resolverhandler.New(cards, blocks, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting tastebook collection engine", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		err := sweeper.Run(ctx, cfg.Qualification.SweepInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := events.NewConsumer(cfg.KafkaBrokers, cfg.RecipeEventsTopic, cfg.ConsumerGroup, sweeper, log)
		if err != nil {
			log.Error("kafka consumer setup failed", "error", err)
			os.Exit(1)
		}
		defer consumer.Close()
		g.Go(func() error {
			err := consumer.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("shutdown with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
