// Package service provides the status taxonomy store and its views.
//
// The taxonomy is configured by administrators in an external settings
// module; this engine only loads it. Reads vastly outnumber writes, so the
// store keeps one immutable snapshot behind a pointer and swaps the whole
// snapshot atomically on refresh. Concurrent readers see either the old or
// the new taxonomy, never a mix of the two.
package service

import (
	"strings"
	"sync"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
)

// SubStatus is a child of a main status, identified by name.
type SubStatus struct {
	Name string `json:"name"`
}

// MainStatus is an administrator-defined top-level interview state. Bucket is
// the optionally declared life-cycle bucket; empty means undeclared.
type MainStatus struct {
	Name   string        `json:"name"`
	Bucket domain.Bucket `json:"bucket,omitempty"`
	Subs   []SubStatus   `json:"subStatuses,omitempty"`
}

// SearchLevel tags where a search hit came from.
type SearchLevel string

const (
	LevelMain SearchLevel = "main"
	LevelSub  SearchLevel = "sub"
)

// SearchHit is one row of a taxonomy search result.
type SearchHit struct {
	Level  SearchLevel `json:"level"`
	Label  string      `json:"label"`
	Parent string      `json:"parent,omitempty"`
}

// Snapshot is one immutable version of the taxonomy.
type Snapshot struct {
	mains  []MainStatus
	byName map[string]*MainStatus
}

// NewSnapshot indexes the given main statuses. Order is preserved; lookup is
// case-insensitive.
func NewSnapshot(mains []MainStatus) *Snapshot {
	snap := &Snapshot{
		mains:  mains,
		byName: make(map[string]*MainStatus, len(mains)),
	}
	for i := range snap.mains {
		snap.byName[strings.ToLower(snap.mains[i].Name)] = &snap.mains[i]
	}
	return snap
}

// Mains returns the main statuses in taxonomy order.
func (s *Snapshot) Mains() []MainStatus {
	return s.mains
}

// Subs returns the ordered sub-statuses of a main status. Unknown mains and
// mains without children both yield an empty slice.
func (s *Snapshot) Subs(mainName string) []SubStatus {
	main, ok := s.byName[strings.ToLower(mainName)]
	if !ok {
		return nil
	}
	return main.Subs
}

// Search matches the query case-insensitively against main and sub names,
// returning hits in taxonomy order: each matching main, then its matching
// subs inline. An empty query matches every name at both levels.
func (s *Snapshot) Search(query string) []SearchHit {
	q := strings.ToLower(strings.TrimSpace(query))
	hits := make([]SearchHit, 0)

	for _, main := range s.mains {
		if q == "" || strings.Contains(strings.ToLower(main.Name), q) {
			hits = append(hits, SearchHit{Level: LevelMain, Label: main.Name})
		}
		for _, sub := range main.Subs {
			if q == "" || strings.Contains(strings.ToLower(sub.Name), q) {
				hits = append(hits, SearchHit{Level: LevelSub, Label: sub.Name, Parent: main.Name})
			}
		}
	}
	return hits
}

// DeclaredBucket reports the bucket an administrator set on a main status.
// Implements domain.TaxonomyResolver.
func (s *Snapshot) DeclaredBucket(mainStatus string) (domain.Bucket, bool) {
	main, ok := s.byName[strings.ToLower(mainStatus)]
	if !ok || main.Bucket == "" {
		return "", false
	}
	return main.Bucket, true
}

// Store holds the current taxonomy snapshot.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a store with an empty snapshot.
func NewStore() *Store {
	return &Store{snap: NewSnapshot(nil)}
}

// Snapshot returns the current snapshot. The returned value is immutable.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace swaps in a new snapshot atomically.
func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// DeclaredBucket resolves against the current snapshot, so a classifier can
// hold the store itself and always see the freshest taxonomy.
func (s *Store) DeclaredBucket(mainStatus string) (domain.Bucket, bool) {
	return s.Snapshot().DeclaredBucket(mainStatus)
}

var _ domain.TaxonomyResolver = (*Store)(nil)
