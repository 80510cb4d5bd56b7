package services

import (
	"context"
	"time"

	"wiki-analyzer/cmd/api/trace"
	"wiki-analyzer/config"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
)

const publishTimeout = 2 * time.Second

// publishArticleEvent 는 아티클 이벤트를 발행한다. 실패는 로그만 남기고 요청은 계속 진행한다.
// 요청이 끝나도 발행은 마저 하도록 ctx 의 취소는 이어받지 않는다.
func publishArticleEvent(ctx context.Context, bus eventbus.EventBus, ev events.ArticleEvent) {
	if bus == nil {
		return
	}
	fields := config.Fields{
		"event_id":   ev.ID,
		"event_type": string(ev.Type),
		"article_id": ev.ArticleID,
		"request_id": trace.RequestIDFromContext(ctx),
	}

	evt, err := eventbus.NewJSONEvent(ev.ID, string(ev.Type), ev, 0)
	if err != nil {
		fields["error"] = err.Error()
		config.ErrorWithFields("failed to encode article event", fields)
		return
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := bus.Publish(pctx, eventbus.TopicArticleEvents.Base(), evt); err != nil {
		fields["error"] = err.Error()
		config.WarnWithFields("failed to publish article event", fields)
		return
	}
	config.DebugWithFields("article event published", fields)
}
