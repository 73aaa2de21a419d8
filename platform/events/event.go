// Package events carries module-to-module notifications over an in-process
// bus. A module publishes facts about state it owns; subscribers react
// without the publisher knowing who they are.
// This is part of the platform layer and contains no business logic.
package events

import (
	"context"
	"time"
)

// Event is a named fact with a timestamp. The name keys handler routing, so
// it must stay stable across releases.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent supplies the timestamp half of Event. Concrete events embed it
// and add their own EventName.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler reacts to one event. A handler error never stops the remaining
// handlers; the bus decides whether errors are logged or surfaced.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus routes published events to the handlers subscribed under the event's
// name. Publish is fire-and-forget; PublishSync waits for every handler and
// reports their combined failures.
type Bus interface {
	Publish(ctx context.Context, event Event)
	PublishSync(ctx context.Context, event Event) error
	Subscribe(eventName string, handler Handler)
}
