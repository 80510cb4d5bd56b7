package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RetryDelays 는 재시도 횟수(1-based)별 지연 시간이다.
// 감사 로그 저장 실패는 대부분 Mongo 일시 장애라서 짧은 간격부터 시작한다.
var RetryDelays = []time.Duration{
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
	10 * time.Minute,
}

// Topic 은 기본 토픽 이름과 여기서 파생되는 재시도/DLQ 토픽 이름을 관리한다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ 토픽 이름 (예: wiki-analyzer.article.events.dlq)
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

func (t Topic) retryTopic(delay time.Duration) string {
	return fmt.Sprintf("%s.retry.%s", t.base, delay.String())
}

// RetryTopics 는 RetryDelays 순서대로 모든 지연 토픽 이름을 반환한다.
func (t Topic) RetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i, delay := range RetryDelays {
		topics[i] = t.retryTopic(delay)
	}
	return topics
}

// RetryTopic 은 retryCount(1-based) 번째 재시도에 사용할 토픽을 반환한다.
func (t Topic) RetryTopic(retryCount int) (string, error) {
	if retryCount <= 0 || retryCount > len(RetryDelays) {
		return "", ErrMaxRetryExceeded
	}
	return t.retryTopic(RetryDelays[retryCount-1]), nil
}

// Event 는 Kafka 메시지 값으로 쓰이는 봉투(envelope)다.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"` // 0 부터 시작
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

type EventHandler func(ctx context.Context, event Event) error

// EventBus 는 이벤트 발행/구독 추상화다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe 는 기본 토픽을 구독하고 실패한 이벤트를 재시도 토픽 또는 DLQ 로 보낸다.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	// StartRetryReinjector 는 지연 시간이 지난 재시도 이벤트를 기본 토픽으로 되돌린다.
	StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error
	Close()
}

var ErrMaxRetryExceeded = errors.New("max retry exceeded")

var ErrRetryScheduleFailed = errors.New("failed to schedule retry or dlq")
