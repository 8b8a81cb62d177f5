package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"review-insight/config"
)

const (
	readTimeout     = 100 * time.Millisecond
	flushTimeoutMs  = 5000
	seekTimeoutMs   = 1000
	maxReinjectWait = 500 * time.Millisecond
	minReinjectWait = 50 * time.Millisecond
)

// KafkaEventBus implements EventBus on confluent-kafka-go.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	producerCfg := &kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	}
	if maxBytes := getKafkaMessageMaxBytesFromEnv(); maxBytes > 0 {
		(*producerCfg)["message.max.bytes"] = maxBytes
	}

	p, err := kafka.NewProducer(producerCfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// delivery reports and client errors
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

	return &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// Close flushes pending messages for up to five seconds and closes the producer.
func (k *KafkaEventBus) Close() {
	if k.Producer != nil {
		if remaining := k.Producer.Flush(flushTimeoutMs); remaining > 0 {
			config.Logger.Warnf("%d kafka messages still queued after flush", remaining)
		}
		k.Producer.Close()
		config.Logger.Info("kafka producer closed")
	}
}

// Publish blocks until the broker acknowledges the event or ctx ends.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)

	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", topic, m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (k *KafkaEventBus) newConsumer(groupID string) (*kafka.Consumer, error) {
	consumerCfg := &kafka.ConfigMap{
		"bootstrap.servers":             k.Brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             "earliest",
		"enable.auto.commit":            false,
		"partition.assignment.strategy": "range",
	}
	if maxPoll := getKafkaMaxPollIntervalMsFromEnv(); maxPoll > 0 {
		(*consumerCfg)["max.poll.interval.ms"] = maxPoll
	}
	return kafka.NewConsumer(consumerCfg)
}

// Subscribe runs handler for every event on the base topic. Offsets are
// committed manually, only after the event was handled or rescheduled.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error {
	c, err := k.newConsumer(groupID)
	if err != nil {
		return fmt.Errorf("create kafka consumer: %w", err)
	}
	defer c.Close()

	topicsToSubscribe := []string{topic.Base()}
	if err := c.SubscribeTopics(topicsToSubscribe, nil); err != nil {
		return fmt.Errorf("subscribe %v: %w", topicsToSubscribe, err)
	}

	config.InfoWithFields("consumer started", config.Fields{
		"group_id": groupID,
		"topics":   strings.Join(topicsToSubscribe, ", "),
	})

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("consumer stopping")
			return ctx.Err()
		default:
			msg, err := c.ReadMessage(readTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.IsFatal() {
					return fmt.Errorf("consumer fatal error: %w", err)
				}
				continue
			}

			var evt Event
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				config.Logger.Errorf("bad event payload on %s: %v, skipping", *msg.TopicPartition.Topic, err)
				c.CommitMessage(msg)
				continue
			}
			if evt.MaxRetry <= 0 || evt.MaxRetry > len(RetryDelays) {
				evt.MaxRetry = len(RetryDelays)
			}

			if evt.Retry > 0 {
				config.Logger.Infof("handling event %s (retry %d/%d) from %s", evt.ID, evt.Retry, evt.MaxRetry, *msg.TopicPartition.Topic)
			} else {
				config.Logger.Debugf("handling event %s from %s", evt.ID, *msg.TopicPartition.Topic)
			}

			if herr := handler(ctx, evt); herr != nil {
				dest, next := scheduleRetry(topic, evt, herr)
				if dest == topic.DLQ() {
					config.ErrorWithFields("event exhausted its retries, sending to dlq", config.Fields{
						"event_id": evt.ID,
						"dlq":      dest,
						"error":    herr.Error(),
					})
				} else {
					config.WarnWithFields("event failed, retry scheduled", config.Fields{
						"event_id": evt.ID,
						"retry":    next.Retry,
						"topic":    dest,
						"error":    herr.Error(),
					})
				}
				if err := k.Publish(ctx, dest, next); err != nil {
					config.Logger.Errorf("%v: %s: %v; offset not committed", ErrRetryScheduleFailed, dest, err)
					continue
				}
			}

			if _, err := c.CommitMessage(msg); err != nil {
				config.Logger.Errorf("commit offset: %v", err)
			}
		}
	}
}

// scheduleRetry picks where a failed event goes next: the following retry
// topic, or the DLQ once Retry reached MaxRetry.
func scheduleRetry(topic Topic, evt Event, cause error) (string, Event) {
	evt.LastError = cause.Error()
	next := evt.Retry + 1
	if next > evt.MaxRetry {
		return topic.DLQ(), evt
	}
	retryTopic, err := topic.GetRetryTopic(next)
	if err != nil {
		return topic.DLQ(), evt
	}
	evt.Retry = next
	return retryTopic, evt
}

// reinjectWait reports how long a message read from topicName must still wait
// before it may go back to the base topic. ok is false for unknown topic names.
func reinjectWait(topicName string, producedAt, now time.Time) (time.Duration, bool) {
	delay, ok := ParseRetryDelayFromTopicName(topicName)
	if !ok {
		return 0, false
	}
	readyAt := producedAt.Add(delay)
	if !now.Before(readyAt) {
		return 0, true
	}
	return readyAt.Sub(now), true
}

// StartRetryReinjector consumes every retry topic and republishes each event
// to the base topic once the delay encoded in its topic name has passed.
func (k *KafkaEventBus) StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error {
	c, err := k.newConsumer(groupID)
	if err != nil {
		return fmt.Errorf("create retry reinjector: %w", err)
	}
	defer c.Close()

	retryTopics := topic.GetRetryTopics()
	if err := c.SubscribeTopics(retryTopics, nil); err != nil {
		return fmt.Errorf("subscribe retry topics %v: %w", retryTopics, err)
	}

	config.InfoWithFields("retry reinjector started", config.Fields{
		"group_id": groupID,
		"topics":   strings.Join(retryTopics, ", "),
	})

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("retry reinjector stopping")
			return ctx.Err()
		default:
			msg, err := c.ReadMessage(readTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) {
					if kerr.Code() == kafka.ErrTimedOut {
						continue
					}
					if kerr.IsFatal() {
						return fmt.Errorf("retry reinjector fatal error: %w", err)
					}
				}
				config.Logger.Errorf("retry reinjector read: %v", err)
				time.Sleep(maxReinjectWait)
				continue
			}

			topicName := *msg.TopicPartition.Topic
			wait, ok := reinjectWait(topicName, msg.Timestamp, time.Now())
			if !ok {
				config.Logger.Errorf("cannot parse retry topic %s, skipping", topicName)
				c.CommitMessage(msg)
				continue
			}
			if wait > 0 {
				// Sleep briefly and seek back so the same message is read again
				// without holding the consumer for the full delay.
				time.Sleep(min(max(wait, minReinjectWait), maxReinjectWait))
				if err := c.Seek(msg.TopicPartition, seekTimeoutMs); err != nil {
					config.Logger.Errorf("retry reinjector seek: %v", err)
				}
				continue
			}

			var evt Event
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				config.Logger.Errorf("bad event payload on %s: %v, skipping", topicName, err)
				c.CommitMessage(msg)
				continue
			}

			config.Logger.Infof("reinjecting event %s from %s to %s (retry %d)", evt.ID, topicName, topic.Base(), evt.Retry)
			if err := k.Publish(ctx, topic.Base(), evt); err != nil {
				config.Logger.Errorf("reinject event %s: %v; offset not committed", evt.ID, err)
				continue
			}

			if _, err := c.CommitMessage(msg); err != nil {
				config.Logger.Errorf("commit offset after reinject: %v", err)
			}
		}
	}
}
