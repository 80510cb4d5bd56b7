package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"wiki-analyzer/config"
)

const pollTimeout = 100 * time.Millisecond

// KafkaEventBus 는 confluent-kafka-go 기반 EventBus 구현체다.
type KafkaEventBus struct {
	producer *kafka.Producer
	brokers  string
}

var _ EventBus = (*KafkaEventBus)(nil)

func NewKafkaEventBus(cfg config.KafkaConfig) (*KafkaEventBus, error) {
	if cfg.Brokers == "" {
		return nil, errors.New("kafka brokers are not configured")
	}
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// delivery report 는 Publish 가 직접 받으므로 여기서는 에러만 기록한다.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					config.Logger.Errorf("kafka delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				config.Logger.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{producer: p, brokers: cfg.Brokers}, nil
}

func (k *KafkaEventBus) Close() {
	if k.producer == nil {
		return
	}
	if remaining := k.producer.Flush(5000); remaining > 0 {
		config.Logger.Warnf("%d messages still queued after flush", remaining)
	}
	k.producer.Close()
	config.Logger.Info("kafka producer closed")
}

// Publish 는 이벤트를 발행하고 delivery report 또는 ctx 종료까지 기다린다.
// 메시지 키는 event.ID 라서 같은 이벤트의 재시도는 같은 파티션으로 간다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.ID),
		Value:          data,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	select {
	case ev := <-deliveryChan:
		if m, ok := ev.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", topic, m.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (k *KafkaEventBus) newConsumer(groupID string, topics []string) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":             k.brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             "earliest",
		"enable.auto.commit":            false,
		"partition.assignment.strategy": "range",
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	if err := c.SubscribeTopics(topics, nil); err != nil {
		c.Close()
		return nil, fmt.Errorf("subscribe %v: %w", topics, err)
	}
	return c, nil
}

// Subscribe 는 수동 커밋으로 기본 토픽을 소비한다. 핸들러가 실패하면 다음 재시도
// 토픽으로, 재시도가 소진되면 DLQ 로 보낸 뒤 커밋한다. 재발행이 실패하면 커밋하지 않는다.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error {
	c, err := k.newConsumer(groupID, []string{topic.Base()})
	if err != nil {
		return err
	}
	defer c.Close()

	config.InfoWithFields("consumer started", config.Fields{"group_id": groupID, "topic": topic.Base()})

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("consumer stopping")
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(pollTimeout)
		if err != nil {
			if fatal := handleReadError("consumer", err); fatal != nil {
				return fatal
			}
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			config.Logger.Errorf("malformed event on %s: %v; skipping", *msg.TopicPartition.Topic, err)
			commit(c, msg)
			continue
		}
		if evt.MaxRetry <= 0 || evt.MaxRetry > len(RetryDelays) {
			evt.MaxRetry = len(RetryDelays)
		}

		config.DebugWithFields("handling event", config.Fields{
			"event_id":   evt.ID,
			"event_type": evt.Type,
			"retry":      evt.Retry,
		})

		if herr := handler(ctx, evt); herr != nil {
			if err := k.scheduleRetry(ctx, topic, evt, herr); err != nil {
				config.Logger.Errorf("event %s: %v; offset not committed", evt.ID, err)
				rewind(c, msg)
				continue
			}
		}

		commit(c, msg)
	}
}

// scheduleRetry 는 실패한 이벤트를 다음 재시도 토픽 또는 DLQ 로 발행한다.
func (k *KafkaEventBus) scheduleRetry(ctx context.Context, topic Topic, evt Event, cause error) error {
	evt.LastError = cause.Error()
	next := evt.Retry + 1

	target, err := topic.RetryTopic(next)
	if next > evt.MaxRetry || errors.Is(err, ErrMaxRetryExceeded) {
		config.ErrorWithFields("retries exhausted, sending to dlq", config.Fields{
			"event_id": evt.ID,
			"dlq":      topic.DLQ(),
			"error":    cause.Error(),
		})
		if err := k.Publish(ctx, topic.DLQ(), evt); err != nil {
			return fmt.Errorf("%w: %v", ErrRetryScheduleFailed, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRetryScheduleFailed, err)
	}

	evt.Retry = next
	config.WarnWithFields("event failed, retry scheduled", config.Fields{
		"event_id": evt.ID,
		"retry":    evt.Retry,
		"topic":    target,
		"error":    cause.Error(),
	})
	if err := k.Publish(ctx, target, evt); err != nil {
		return fmt.Errorf("%w: %v", ErrRetryScheduleFailed, err)
	}
	return nil
}

// StartRetryReinjector 는 재시도 토픽들을 구독하고, 메시지 타임스탬프에 토픽의 지연
// 시간을 더한 시각이 지나면 기본 토픽으로 재발행한다.
func (k *KafkaEventBus) StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error {
	retryTopics := topic.RetryTopics()
	c, err := k.newConsumer(groupID, retryTopics)
	if err != nil {
		return err
	}
	defer c.Close()

	config.InfoWithFields("retry reinjector started", config.Fields{"group_id": groupID, "topics": retryTopics})

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("retry reinjector stopping")
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(pollTimeout)
		if err != nil {
			if fatal := handleReadError("retry reinjector", err); fatal != nil {
				return fatal
			}
			continue
		}

		topicName := *msg.TopicPartition.Topic
		delay, ok := ParseRetryDelayFromTopicName(topicName)
		if !ok {
			config.Logger.Errorf("unrecognized retry topic %s; skipping", topicName)
			commit(c, msg)
			continue
		}

		if wait := time.Until(msg.Timestamp.Add(delay)); wait > 0 {
			// 아직 준비되지 않은 메시지는 커밋하지 않고 되감아 다시 읽는다.
			time.Sleep(min(max(wait, 50*time.Millisecond), 500*time.Millisecond))
			rewind(c, msg)
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			config.Logger.Errorf("malformed event on %s: %v; skipping", topicName, err)
			commit(c, msg)
			continue
		}

		config.InfoWithFields("reinjecting event", config.Fields{
			"event_id": evt.ID,
			"from":     topicName,
			"to":       topic.Base(),
			"retry":    evt.Retry,
		})
		if err := k.Publish(ctx, topic.Base(), evt); err != nil {
			config.Logger.Errorf("reinject event %s: %v; offset not committed", evt.ID, err)
			rewind(c, msg)
			continue
		}
		commit(c, msg)
	}
}

// rewind 는 커밋하지 않은 메시지를 다음 poll 에서 다시 읽도록 오프셋을 되돌린다.
func rewind(c *kafka.Consumer, msg *kafka.Message) {
	if err := c.Seek(msg.TopicPartition, 0); err != nil {
		config.Logger.Errorf("seek %v: %v", msg.TopicPartition, err)
	}
}

// readErrorBackoff 는 타임아웃이 아닌 읽기 오류 뒤에 쉬는 시간이다.
const readErrorBackoff = 500 * time.Millisecond

// handleReadError 는 ReadMessage 오류를 분류한다. 타임아웃은 무시하고, fatal 이면
// 루프를 끝낼 에러를 반환하며, 나머지는 로그를 남기고 잠시 쉰다.
func handleReadError(who string, err error) error {
	var kerr kafka.Error
	if errors.As(err, &kerr) {
		if kerr.Code() == kafka.ErrTimedOut {
			return nil
		}
		if kerr.IsFatal() {
			return fmt.Errorf("%s: %w", who, err)
		}
	}
	config.Logger.Errorf("%s read: %v", who, err)
	time.Sleep(readErrorBackoff)
	return nil
}

func commit(c *kafka.Consumer, msg *kafka.Message) {
	if _, err := c.CommitMessage(msg); err != nil {
		config.Logger.Errorf("commit offset %v: %v", msg.TopicPartition, err)
	}
}
