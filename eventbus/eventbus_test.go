package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicNames(t *testing.T) {
	topic := NewTopic("wiki.test")

	assert.Equal(t, "wiki.test", topic.Base())
	assert.Equal(t, "wiki.test.dlq", topic.DLQ())

	retry := topic.RetryTopics()
	require.Len(t, retry, len(RetryDelays))
	assert.Equal(t, "wiki.test.retry.5s", retry[0])
	assert.Equal(t, "wiki.test.retry.10m0s", retry[len(retry)-1])
}

func TestRetryTopicBounds(t *testing.T) {
	topic := NewTopic("wiki.test")

	name, err := topic.RetryTopic(1)
	require.NoError(t, err)
	assert.Equal(t, "wiki.test.retry.5s", name)

	_, err = topic.RetryTopic(0)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
	_, err = topic.RetryTopic(len(RetryDelays) + 1)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
}

func TestParseRetryDelayFromTopicName(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  time.Duration
		ok    bool
	}{
		{"duration suffix", "wiki.test.retry.30s", 30 * time.Second, true},
		{"composite duration", "wiki.test.retry.2m0s", 2 * time.Minute, true},
		{"index suffix", "wiki.test.retry.1", RetryDelays[0], true},
		{"index out of range", "wiki.test.retry.9", 0, false},
		{"no marker", "wiki.test", 0, false},
		{"empty suffix", "wiki.test.retry.", 0, false},
		{"garbage", "wiki.test.retry.soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryDelayFromTopicName(tt.topic)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryRetryTopicParses(t *testing.T) {
	for i, name := range TopicArticleEvents.RetryTopics() {
		d, ok := ParseRetryDelayFromTopicName(name)
		require.True(t, ok, name)
		assert.Equal(t, RetryDelays[i], d)
	}
}

type payload struct {
	ArticleID int64  `json:"article_id"`
	Title     string `json:"title"`
}

func TestNewJSONEventAndDecode(t *testing.T) {
	evt, err := NewJSONEvent("", "article.saved", payload{ArticleID: 7, Title: "Obama"}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "article.saved", evt.Type)
	assert.Equal(t, len(RetryDelays), evt.MaxRetry)
	assert.Zero(t, evt.Retry)

	got, err := DecodeJSON[payload](evt)
	require.NoError(t, err)
	assert.Equal(t, payload{ArticleID: 7, Title: "Obama"}, got)

	evt.Payload = []byte("{")
	_, err = DecodeJSON[payload](evt)
	assert.Error(t, err)
}

func TestNewJSONEventKeepsID(t *testing.T) {
	evt, err := NewJSONEvent("fixed-id", "", map[string]int{"a": 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", evt.ID)
	assert.Equal(t, 2, evt.MaxRetry)
}

// fakeBus 는 Subscribe 호출 시 준비된 이벤트를 핸들러에 그대로 전달한다.
type fakeBus struct {
	NopEventBus
	events []Event
	errs   []error
}

func (f *fakeBus) Subscribe(ctx context.Context, _ string, _ Topic, handler EventHandler) error {
	for _, e := range f.events {
		f.errs = append(f.errs, handler(ctx, e))
	}
	return nil
}

func TestSubscribeJSONDecodesPayload(t *testing.T) {
	good, err := NewJSONEvent("1", "article.saved", payload{ArticleID: 1, Title: "A"}, 0)
	require.NoError(t, err)
	bad := Event{ID: "2", Payload: []byte("not json")}

	bus := &fakeBus{events: []Event{good, bad}}
	var seen []payload
	err = SubscribeJSON(context.Background(), bus, "g", TopicArticleEvents, func(_ context.Context, p payload, meta Event) error {
		seen = append(seen, p)
		assert.Equal(t, "1", meta.ID)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []payload{{ArticleID: 1, Title: "A"}}, seen)
	require.Len(t, bus.errs, 2)
	assert.NoError(t, bus.errs[0])
	assert.Error(t, bus.errs[1])
}

func TestNopEventBusPublish(t *testing.T) {
	bus := NewNopEventBus()
	assert.NoError(t, bus.Publish(context.Background(), TopicArticleEvents.Base(), Event{ID: "x"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bus.Subscribe(ctx, "g", TopicArticleEvents, nil), context.Canceled)
}

func TestHandleReadError(t *testing.T) {
	assert.NoError(t, handleReadError("consumer", kafka.NewError(kafka.ErrTimedOut, "poll timeout", false)))

	fatal := kafka.NewError(kafka.ErrFatal, "broker gone", true)
	err := handleReadError("consumer", fatal)
	require.Error(t, err)
	var kerr kafka.Error
	require.True(t, errors.As(err, &kerr))
	assert.True(t, kerr.IsFatal())

	start := time.Now()
	assert.NoError(t, handleReadError("consumer", kafka.NewError(kafka.ErrTransport, "connection reset", false)))
	assert.GreaterOrEqual(t, time.Since(start), readErrorBackoff)
}
