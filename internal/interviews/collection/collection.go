// Package collection holds the in-memory working set of interview records
// and the read paths (tabs, facets, counts) computed over it.
package collection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Subscription cancels a snapshot-change subscription.
type Subscription func()

// Manager owns the interview working set. Reads serve from the current
// snapshot; every swap notifies subscribers, so consumers react to change
// instead of polling.
type Manager struct {
	store      repository.Store
	classifier *domain.Classifier
	bus        events.Bus
	log        *logger.Logger
	now        func() time.Time

	mu      sync.RWMutex
	records []domain.Interview

	subMu   sync.Mutex
	subs    map[int]func([]domain.Interview)
	nextSub int

	locks *keyedLocks
}

func NewManager(store repository.Store, classifier *domain.Classifier, bus events.Bus, log *logger.Logger) *Manager {
	return &Manager{
		store:      store,
		classifier: classifier,
		bus:        bus,
		log:        log,
		now:        time.Now,
		subs:       make(map[int]func([]domain.Interview)),
		locks:      newKeyedLocks(),
	}
}

// Reload replaces the working set from the store. A failed load leaves an
// empty collection, never a partial one; the error is returned after the
// swap so callers still observe the degraded state.
func (m *Manager) Reload(ctx context.Context) error {
	records, err := m.store.ListInterviews(ctx)
	if err != nil {
		m.log.DegradedPath("interviews.reload", "serving empty collection", err)
		m.SetAll(nil)
		return err
	}
	m.SetAll(records)
	return nil
}

// SetAll swaps the snapshot and notifies subscribers with the new records.
func (m *Manager) SetAll(records []domain.Interview) {
	m.mu.Lock()
	m.records = records
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(context.Background(), events.InterviewsReloaded{
			BaseEvent:   events.NewBaseEvent(),
			RecordCount: len(records),
		})
	}
	m.notify(records)
}

// Snapshot returns the current working set. Callers must not mutate it.
func (m *Manager) Snapshot() []domain.Interview {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records
}

// Get finds a record in the current snapshot by id.
func (m *Manager) Get(id uuid.UUID) (domain.Interview, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.Interview{}, false
}

// Filter applies a tab and facets to the current snapshot.
func (m *Manager) Filter(tab domain.Tab, facets domain.Facets) []domain.Interview {
	return domain.FilterInterviews(m.Snapshot(), tab, facets, m.classifier, m.now())
}

// Classify derives the life-cycle bucket for a status token.
func (m *Manager) Classify(token string) domain.Bucket {
	return m.classifier.Classify(token)
}

// Counts aggregates tab and per-status counts over the current snapshot.
func (m *Manager) Counts() (domain.TabCounts, []domain.StatusCount) {
	return domain.Counts(m.Snapshot(), m.classifier, m.now())
}

// Subscribe registers fn to run on every snapshot swap. fn is called
// synchronously with the new records; keep it cheap.
func (m *Manager) Subscribe(fn func([]domain.Interview)) Subscription {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()
	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) notify(records []domain.Interview) {
	m.subMu.Lock()
	fns := make([]func([]domain.Interview), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()
	for _, fn := range fns {
		fn(records)
	}
}

// WithRecordLock serializes fn against other mutations of the same
// interview. Mutations of distinct interviews proceed concurrently.
func (m *Manager) WithRecordLock(id uuid.UUID, fn func() error) error {
	unlock := m.locks.lock(id)
	defer unlock()
	return fn()
}

type keyedLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[uuid.UUID]*lockEntry)}
}

func (k *keyedLocks) lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	entry, ok := k.locks[id]
	if !ok {
		entry = &lockEntry{}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
