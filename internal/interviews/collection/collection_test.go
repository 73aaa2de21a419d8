package collection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

type fakeStore struct {
	mu      sync.Mutex
	records []domain.Interview
	err     error
	calls   int
}

func (f *fakeStore) ListInterviews(context.Context) ([]domain.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeStore) GetInterview(_ context.Context, id uuid.UUID) (domain.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Interview{}, errors.New("not found")
}

func (f *fakeStore) CreateInterview(_ context.Context, rec domain.Interview) (domain.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeStore) UpdateInterview(_ context.Context, id uuid.UUID, _ repository.UpdateFields) (domain.Interview, error) {
	return f.GetInterview(context.Background(), id)
}

func (f *fakeStore) FindByPhone(context.Context, string) ([]domain.Interview, error) {
	return nil, nil
}

func newTestManager(t *testing.T, store repository.Store) *Manager {
	t.Helper()
	classifier, err := domain.NewClassifier(domain.ClassifierOptions{})
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	return NewManager(store, classifier, nil, logger.New("development"))
}

func TestReloadSwapsSnapshot(t *testing.T) {
	store := &fakeStore{records: []domain.Interview{
		{ID: uuid.New(), CandidateName: "Asha", Status: "Scheduled"},
		{ID: uuid.New(), CandidateName: "Ravi", Status: "Selected"},
	}}
	m := newTestManager(t, store)

	if err := m.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(m.Snapshot()); got != 2 {
		t.Fatalf("expected 2 records, got %d", got)
	}
}

func TestReloadFailureLeavesEmptyCollection(t *testing.T) {
	store := &fakeStore{records: []domain.Interview{
		{ID: uuid.New(), CandidateName: "Asha", Status: "Scheduled"},
	}}
	m := newTestManager(t, store)

	if err := m.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(m.Snapshot()) != 1 {
		t.Fatal("seed load failed")
	}

	store.mu.Lock()
	store.err = errors.New("connection reset")
	store.mu.Unlock()

	if err := m.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	if got := len(m.Snapshot()); got != 0 {
		t.Fatalf("failed reload must leave an empty collection, got %d records", got)
	}
}

func TestSubscribeNotifiesOnEverySwap(t *testing.T) {
	store := &fakeStore{}
	m := newTestManager(t, store)

	var mu sync.Mutex
	var sizes []int
	cancel := m.Subscribe(func(records []domain.Interview) {
		mu.Lock()
		sizes = append(sizes, len(records))
		mu.Unlock()
	})

	m.SetAll([]domain.Interview{{ID: uuid.New()}})
	m.SetAll(nil)

	mu.Lock()
	got := append([]int(nil), sizes...)
	mu.Unlock()
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Fatalf("expected notifications [1 0], got %v", got)
	}

	cancel()
	m.SetAll([]domain.Interview{{ID: uuid.New()}})

	mu.Lock()
	defer mu.Unlock()
	if len(sizes) != 2 {
		t.Fatal("cancelled subscription still notified")
	}
}

func TestWithRecordLockSerializesSameID(t *testing.T) {
	m := newTestManager(t, &fakeStore{})
	id := uuid.New()

	const workers = 8
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithRecordLock(id, func() error {
				v := counter
				time.Sleep(time.Millisecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d serialized increments, got %d", workers, counter)
	}
}

func TestWithRecordLockAllowsDistinctIDs(t *testing.T) {
	m := newTestManager(t, &fakeStore{})

	first := uuid.New()
	second := uuid.New()
	release := make(chan struct{})
	entered := make(chan struct{})

	go func() {
		_ = m.WithRecordLock(first, func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	done := make(chan struct{})
	go func() {
		_ = m.WithRecordLock(second, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mutation of a different interview blocked behind an unrelated lock")
	}
	close(release)
}
