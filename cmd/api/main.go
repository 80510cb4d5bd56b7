package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wiki-analyzer/analysis"
	"wiki-analyzer/cmd/api/clients/wikiclient"
	"wiki-analyzer/cmd/api/httpclient"
	"wiki-analyzer/cmd/api/router"
	"wiki-analyzer/cmd/api/services"
	"wiki-analyzer/config"
	"wiki-analyzer/db"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/feeder"
	"wiki-analyzer/repositories"
)

// @title           Wiki Analyzer API
// @version         1.0
// @description     Search Wikipedia, analyze article text and keep saved articles with their analysis
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := db.OpenSQLite(ctx, cfg.Database.Path)
	if err != nil {
		config.Logger.Errorf("failed to open database: %v", err)
		os.Exit(1)
	}
	defer conn.Close()

	bus := newEventBus(ctx, cfg.Kafka)
	defer bus.Close()

	// 엔진 설정(토픽 테이블, 상위 단어 수)은 시작 시 한 번만 만든다.
	engine := analysis.New(cfg.EngineOptions())

	wikiHTTP := httpclient.New(httpclient.Config{
		Timeout:   time.Duration(cfg.Wikipedia.TimeoutSecs) * time.Second,
		UserAgent: cfg.Wikipedia.UserAgent,
	})
	wiki := wikiclient.New(wikiHTTP, cfg.Wikipedia.APIURL, cfg.Wikipedia.RESTURL)
	featured := func(ctx context.Context, limit int) ([]feeder.FeaturedArticle, error) {
		return feeder.FetchFeaturedArticles(ctx, wikiHTTP, cfg.Wikipedia.FeaturedFeedURL, limit)
	}

	r := router.New(router.Deps{
		Articles:      services.NewArticleService(wiki, featured, engine, bus, cfg.Wikipedia.SearchLimit),
		SavedArticles: services.NewSavedArticleService(repositories.NewSavedArticleRepository(conn), engine, bus),
		Health:        conn.PingContext,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.InfoWithFields("api server listening", config.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Errorf("api server error: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		config.Logger.Info("received shutdown signal, shutting down api server...")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("api server shutdown error: %v", err)
	}
	config.Logger.Info("api server stopped")
}

// newEventBus 는 브로커가 설정되어 있으면 Kafka 버스를, 아니면 로그만 남기는 버스를 만든다.
// Kafka 연결에 실패해도 API 는 이벤트 없이 계속 동작한다.
func newEventBus(ctx context.Context, cfg config.KafkaConfig) eventbus.EventBus {
	if cfg.Brokers == "" {
		config.Logger.Info("kafka brokers not configured, article events are only logged")
		return eventbus.NewNopEventBus()
	}
	if err := eventbus.EnsureTopics(ctx, cfg.Brokers, eventbus.TopicArticleEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg)
	if err != nil {
		config.Logger.Errorf("failed to create event bus, falling back to log-only bus: %v", err)
		return eventbus.NewNopEventBus()
	}
	return bus
}
