package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"review-insight/cache"
	"review-insight/config"
	"review-insight/db"
	"review-insight/eventbus"
	"review-insight/repositories"
	"review-insight/services"
)

// The worker classifies reviews published by the API when the event bus is
// enabled. The retry reinjector runs in the same process unless
// WORKER_SKIP_REINJECTOR is set, for deployments that run cmd/retryworker.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.Disconnect(context.Background())

	brokers, err := eventbus.GetBrokers()
	if err != nil {
		config.Logger.Errorf("%v", err)
		os.Exit(1)
	}
	groupID, err := eventbus.GetGroupID()
	if err != nil {
		config.Logger.Errorf("%v", err)
		os.Exit(1)
	}

	topic := eventbus.NewTopic(cfg.EventBus.Topic)
	if err := eventbus.EnsureTopics(ctx, brokers, topic, cfg.EventBus.Partitions); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	c, closeCache := newCache(ctx, cfg.Cache)
	defer closeCache()

	database := db.Database()
	classifier := services.NewClassificationService(
		repositories.NewReviewRepository(database),
		repositories.NewSentimentRepository(database),
		repositories.NewProductRepository(database),
		c,
		cfg.Analysis.ClassifyBatchSize,
	)

	config.Logger.Info("starting classification worker with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.Subscribe(ctx, groupID, topic, newReviewEventHandler(classifier)); err != nil && !errors.Is(err, context.Canceled) {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
			cancel()
		}
	}()

	if os.Getenv("WORKER_SKIP_REINJECTOR") == "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := bus.StartRetryReinjector(ctx, groupID+"-retry", topic); err != nil && !errors.Is(err, context.Canceled) {
				config.Logger.Errorf("eventbus retry reinjector error: %v", err)
			}
		}()
	}

	select {
	case <-sigChan:
		config.Logger.Info("received shutdown signal, shutting down worker...")
	case <-ctx.Done():
	}

	cancel()
	wg.Wait()

	config.Logger.Info("worker stopped")
}

// newCache shares the API's redis cache so classifications invalidate the
// derived dashboard results there. With the memory backend the API copies
// expire by TTL instead.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, func()) {
	if cfg.Backend == "redis" {
		rc, err := cache.NewRedis(ctx, os.Getenv("REDIS_ADDR"), cfg.KeyPrefix, cfg.TTL())
		if err == nil {
			return rc, func() { _ = rc.Close() }
		}
		config.Logger.Warnf("redis cache unavailable: %v", err)
	}
	return cache.NewMemory(cfg.TTL(), cache.SystemClock), func() {}
}
