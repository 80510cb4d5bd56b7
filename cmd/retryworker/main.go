package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"wiki-analyzer/config"
	"wiki-analyzer/eventbus"
)

// retryworker 는 모든 토픽의 지연(재시도) 토픽을 구독하고, 지연 시간이 지난 이벤트를
// 기본 토픽으로 재주입한다. 컨슈머(auditlog)와 분리해 재시도 대기가 본 처리를 막지 않는다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Brokers == "" {
		config.Logger.Error("kafka.brokers (KAFKA_BOOTSTRAP_SERVERS) is required for the retry worker")
		os.Exit(1)
	}

	for _, t := range eventbus.AllTopics {
		if err := eventbus.EnsureTopics(ctx, cfg.Kafka.Brokers, t, 3); err != nil {
			config.Logger.Errorf("failed to ensure eventbus topics for %s: %v", t.Base(), err)
		}
	}

	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	groupID := cfg.Kafka.GroupID + "-retry-worker"

	config.Logger.Info("starting retry worker...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	for _, topic := range eventbus.AllTopics {
		wg.Add(1)
		go func() {
			defer wg.Done()
			topicGroupID := groupID + "-" + strings.ReplaceAll(topic.Base(), ".", "-")
			if err := bus.StartRetryReinjector(ctx, topicGroupID, topic); err != nil && !errors.Is(err, context.Canceled) {
				config.Logger.Errorf("retry reinjector error for %s: %v", topic.Base(), err)
			}
		}()
	}

	<-sigChan
	config.Logger.Info("received shutdown signal, shutting down retry worker...")

	cancel()
	wg.Wait()

	config.Logger.Info("retry worker stopped")
}
