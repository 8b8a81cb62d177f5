package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"review-insight/config"
	"review-insight/eventbus"
)

// retryworker runs only the retry reinjector, for deployments that scale
// classification workers with WORKER_SKIP_REINJECTOR set.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
		config.Logger.Errorf("failed to ensure eventbus topics for %s: %v", topic.Base(), err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	config.Logger.Info("starting retry worker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := bus.StartRetryReinjector(ctx, groupID+"-retry", topic); err != nil && !errors.Is(err, context.Canceled) {
			config.Logger.Errorf("eventbus retry reinjector error for %s: %v", topic.Base(), err)
		}
	}()

	select {
	case <-sigChan:
		config.Logger.Info("received shutdown signal, shutting down retry worker service...")
	case <-done:
	}

	cancel()
	<-done

	config.Logger.Info("retry worker service stopped")
}
