package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"review-insight/api/router"
	"review-insight/cache"
	"review-insight/config"
	"review-insight/db"
	_ "review-insight/docs" // swag will generate this package
	"review-insight/eventbus"
	"review-insight/events"
	"review-insight/quota"
	"review-insight/repositories"
	"review-insight/services"
	"review-insight/summarizer"
)

const shutdownTimeout = 10 * time.Second

// @title           Review Insight API
// @version         1.0
// @description     Sentiment dashboard backend for marketplace product reviews
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	c, closeCache := newCache(ctx, cfg.Cache)
	defer closeCache()

	database := db.Database()
	sentimentRepo := repositories.NewSentimentRepository(database)
	reviewRepo := repositories.NewReviewRepository(database)
	productRepo := repositories.NewProductRepository(database)
	aiLogRepo := repositories.NewAILogRepository(database)

	publisher, closeBus := newPublisher(ctx, cfg.EventBus)
	defer closeBus()

	sentimentSvc := services.NewSentimentService(sentimentRepo, productRepo, c, cfg.Analysis)
	classifier := services.NewClassificationService(reviewRepo, sentimentRepo, productRepo, c, cfg.Analysis.ClassifyBatchSize)

	r := router.New(cfg.Server, router.Deps{
		Sentiments:     sentimentSvc,
		Classification: classifier,
		Reviews:        services.NewReviewService(reviewRepo, sentimentRepo, classifier, c, publisher).WithPublishTimeout(cfg.EventBus.PublishTimeout()),
		Products:       services.NewProductService(productRepo, reviewRepo, sentimentRepo),
		Statistics:     services.NewStatisticService(productRepo, reviewRepo),
		Insights:       services.NewInsightService(newGenerator(ctx, cfg.LLM), quota.NewLimiterFromConfig(cfg), aiLogRepo, sentimentSvc, cfg.LLM),
		Health:         db.Ping,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.InfoWithFields("starting api server", config.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Errorf("api server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	config.Logger.Info("received shutdown signal, shutting down api server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("api server shutdown: %v", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		config.Logger.Errorf("mongo disconnect: %v", err)
	}

	config.Logger.Info("api server stopped")
}

// newCache falls back to the in-process cache when redis is unreachable.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, func()) {
	if cfg.Backend == "redis" {
		rc, err := cache.NewRedis(ctx, os.Getenv("REDIS_ADDR"), cfg.KeyPrefix, cfg.TTL())
		if err == nil {
			config.Logger.Info("using redis cache")
			return rc, func() { _ = rc.Close() }
		}
		config.Logger.Warnf("redis cache unavailable, using memory cache: %v", err)
	}
	return cache.NewMemory(cfg.TTL(), cache.SystemClock), func() {}
}

// newGenerator returns nil when no API key is configured; the analyze
// endpoints then serve fallbacks.
func newGenerator(ctx context.Context, cfg config.LLMConfig) summarizer.Generator {
	g, err := summarizer.NewGeminiGenerator(ctx, cfg, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		config.Logger.Warnf("narrative generation disabled: %v", err)
		return nil
	}
	return g
}

// newPublisher connects to kafka when the event bus is enabled. A nil
// publisher makes new reviews classify inline.
func newPublisher(ctx context.Context, cfg config.EventBusConfig) (services.ReviewEventPublisher, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	brokers, err := eventbus.GetBrokers()
	if err != nil {
		config.Logger.Warnf("event bus disabled: %v", err)
		return nil, func() {}
	}
	topic := eventbus.NewTopic(cfg.Topic)
	if err := eventbus.EnsureTopics(ctx, brokers, topic, cfg.Partitions); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Warnf("event bus disabled: %v", err)
		return nil, func() {}
	}
	return events.NewReviewPublisher(bus, topic, "api"), bus.Close
}
