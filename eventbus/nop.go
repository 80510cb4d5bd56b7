package eventbus

import (
	"context"

	"wiki-analyzer/config"
)

// NopEventBus 는 Kafka 브로커가 설정되지 않았을 때 쓰는 구현체다.
// 발행된 이벤트를 debug 로그로만 남기고 버린다.
type NopEventBus struct{}

func NewNopEventBus() *NopEventBus { return &NopEventBus{} }

func (NopEventBus) Publish(_ context.Context, topic string, event Event) error {
	config.DebugWithFields("event dropped (no broker configured)", config.Fields{
		"topic":      topic,
		"event_id":   event.ID,
		"event_type": event.Type,
	})
	return nil
}

// Subscribe 는 ctx 가 끝날 때까지 대기한다.
func (NopEventBus) Subscribe(ctx context.Context, _ string, _ Topic, _ EventHandler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopEventBus) StartRetryReinjector(ctx context.Context, _ string, _ Topic) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopEventBus) Close() {}
