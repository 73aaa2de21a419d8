package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type pingEvent struct{ BaseEvent }

func (pingEvent) EventName() string { return "ping" }

func TestPublishSyncAggregatesHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(nil)

	handled := 0
	bus.Subscribe("ping", HandlerFunc(func(context.Context, Event) error {
		handled++
		return errors.New("first failure")
	}))
	bus.Subscribe("ping", HandlerFunc(func(context.Context, Event) error {
		handled++
		return nil
	}))
	bus.Subscribe("ping", HandlerFunc(func(context.Context, Event) error {
		handled++
		return errors.New("second failure")
	}))

	err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	if err == nil {
		t.Fatal("expected the combined handler error")
	}
	if handled != 3 {
		t.Fatalf("a failing handler must not stop the rest, ran %d of 3", handled)
	}
	if !strings.Contains(err.Error(), "first failure") || !strings.Contains(err.Error(), "second failure") {
		t.Fatalf("combined error dropped a failure: %v", err)
	}
}

func TestPublishSyncWithoutHandlers(t *testing.T) {
	bus := NewInMemoryBus(nil)
	if err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("no handlers, no error, got %v", err)
	}
}

func TestPublishDispatchesAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(nil)

	got := make(chan Event, 1)
	bus.Subscribe("ping", HandlerFunc(func(_ context.Context, e Event) error {
		got <- e
		return nil
	}))

	bus.Publish(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})

	select {
	case e := <-got:
		if e.EventName() != "ping" {
			t.Fatalf("wrong event delivered: %s", e.EventName())
		}
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}
