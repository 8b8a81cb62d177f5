package events

import (
	"time"

	"review-insight/models"
)

type EventType string

const (
	ReviewCreated EventType = "review.created"
)

// BaseEvent is embedded in every event payload.
type BaseEvent struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "importer"
	Version   string    `json:"version"`
}

// ReviewCreatedEvent asks the worker to classify a freshly stored review.
// It carries the whole review so the worker does not need to read it back.
type ReviewCreatedEvent struct {
	BaseEvent
	Review models.Review `json:"review"`
}
