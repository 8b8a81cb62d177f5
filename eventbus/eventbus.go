package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RetryDelays holds the fixed backoff for each retry attempt (1-based).
var RetryDelays = []time.Duration{
	10 * time.Second,
	30 * time.Second,
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Topic derives the retry and DLQ topic names from a base topic.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ returns the dead letter topic, e.g. review-insight.review.events.dlq.
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// GetRetryTopics returns every retry topic in attempt order.
func (t Topic) GetRetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i := range RetryDelays {
		topics[i] = t.retryTopic(i + 1)
	}
	return topics
}

// GetRetryTopic returns the topic for the given retry attempt (1-based).
func (t Topic) GetRetryTopic(retryCount int) (string, error) {
	if retryCount <= 0 || retryCount > len(RetryDelays) {
		return "", ErrMaxRetryExceeded
	}
	return t.retryTopic(retryCount), nil
}

// retry topics are named "<base>.retry.<n>"; ParseRetryDelayFromTopicName reads them back.
func (t Topic) retryTopic(n int) string {
	return fmt.Sprintf("%s.retry.%d", t.base, n)
}

// Event is the envelope written to every topic.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"`
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

type EventHandler func(ctx context.Context, event Event) error

type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe consumes the base topic and schedules retries for failed events.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	// StartRetryReinjector moves events from the retry topics back to the base topic once their delay elapsed.
	StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error
	Close()
}

var ErrMaxRetryExceeded = errors.New("max retry exceeded")

var ErrRetryScheduleFailed = errors.New("failed to publish retry or dlq event")
