// Package events defines the domain events exchanged between modules and
// re-exports the platform event bus for convenience.
package events

import (
	"github.com/google/uuid"

	platformevents "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/events"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Re-exports so internal modules only import internal/events.
type (
	Event       = platformevents.Event
	Handler     = platformevents.Handler
	HandlerFunc = platformevents.HandlerFunc
	Bus         = platformevents.Bus
	BaseEvent   = platformevents.BaseEvent
	InMemoryBus = platformevents.InMemoryBus
)

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// NewBaseEvent creates a new base event with the current timestamp.
func NewBaseEvent() BaseEvent {
	return platformevents.NewBaseEvent()
}

// TaxonomyReloaded fires after the taxonomy store swapped in a new snapshot.
type TaxonomyReloaded struct {
	BaseEvent
	MainStatusCount int
}

func (TaxonomyReloaded) EventName() string { return "taxonomy.reloaded" }

// InterviewsReloaded fires after the collection manager replaced its working set.
type InterviewsReloaded struct {
	BaseEvent
	RecordCount int
}

func (InterviewsReloaded) EventName() string { return "interviews.reloaded" }

// ReassignmentResolved fires after a pending request reached a terminal state.
type ReassignmentResolved struct {
	BaseEvent
	RequestID   uuid.UUID
	InterviewID uuid.UUID
	Approved    bool
}

func (ReassignmentResolved) EventName() string { return "reassignment.resolved" }
