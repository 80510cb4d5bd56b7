package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"wiki-analyzer/config"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
	"wiki-analyzer/models"
	"wiki-analyzer/repositories"
)

// EventStore 는 감사 로그 저장소다. 이미 기록된 이벤트면 inserted=false 를 반환한다.
type EventStore interface {
	Insert(ctx context.Context, ev models.ArticleEvent) (inserted bool, err error)
}

func newMongoStore(d *mongo.Database) EventStore {
	return repositories.NewArticleEventRepository(d)
}

// Recorder 는 아티클 이벤트를 감사 로그 문서로 바꿔 저장한다.
type Recorder struct {
	store EventStore
}

func NewRecorder(store EventStore) *Recorder {
	return &Recorder{store: store}
}

// Handle 은 SubscribeJSON 핸들러다. 저장 실패를 반환하면 재시도 토픽으로 넘어간다.
func (r *Recorder) Handle(ctx context.Context, ev events.ArticleEvent, meta eventbus.Event) error {
	if ev.ID == "" {
		ev.ID = meta.ID
	}
	if ev.Type == "" {
		ev.Type = events.EventType(meta.Type)
	}

	inserted, err := r.store.Insert(ctx, ev.AuditRecord(meta.Retry))
	if err != nil {
		return err
	}

	fields := config.Fields{
		"event_id":   ev.ID,
		"event_type": string(ev.Type),
		"article_id": ev.ArticleID,
		"retry":      meta.Retry,
	}
	if !inserted {
		config.DebugWithFields("duplicate article event ignored", fields)
		return nil
	}
	config.InfoWithFields("article event recorded", fields)
	return nil
}
