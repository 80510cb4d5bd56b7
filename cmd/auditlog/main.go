package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"wiki-analyzer/config"
	"wiki-analyzer/db"
	"wiki-analyzer/eventbus"
)

// auditlog 는 아티클 이벤트를 소비해 MongoDB article_events 컬렉션에 기록한다.
// 실패한 이벤트는 재시도 토픽으로 보내지고, retryworker 가 지연 후 기본 토픽으로 되돌린다.
// 재시도를 모두 소진하면 DLQ 로 간다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Brokers == "" {
		config.Logger.Error("kafka.brokers (KAFKA_BOOTSTRAP_SERVERS) is required for the audit log worker")
		os.Exit(1)
	}

	// MongoDB 초기화
	if err := db.InitMongo(ctx, cfg.Mongo); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.DisconnectMongo(context.Background())

	// EventBus 초기화 및 토픽 보장
	if err := eventbus.EnsureTopics(ctx, cfg.Kafka.Brokers, eventbus.TopicArticleEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	recorder := NewRecorder(newMongoStore(db.Database()))

	config.Logger.Info("starting audit log worker...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	// 메인 구독
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := eventbus.SubscribeJSON(ctx, bus, cfg.Kafka.GroupID, eventbus.TopicArticleEvents, recorder.Handle)
		if err != nil && !errors.Is(err, context.Canceled) {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		config.Logger.Info("received shutdown signal, shutting down audit log worker...")
	case <-ctx.Done():
	}

	cancel()
	wg.Wait()

	config.Logger.Info("audit log worker stopped")
}
