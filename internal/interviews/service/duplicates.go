package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/collection"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/phone"
)

// DuplicateReport is the advisory result of a phone duplicate check.
// Degraded is set when the authoritative store could not be reached and
// the matches come from the local working set instead.
type DuplicateReport struct {
	Matches  []domain.Interview
	Degraded bool
}

// Detector finds existing interviews sharing a phone number with a
// candidate. Matching is symmetric: a candidate's mobile number colliding
// with an existing record's alternate number counts, and vice versa.
type Detector struct {
	store      repository.Store
	collection *collection.Manager
	log        *logger.Logger
}

func NewDetector(store repository.Store, coll *collection.Manager, log *logger.Logger) *Detector {
	return &Detector{store: store, collection: coll, log: log}
}

// CheckPhones looks up every non-empty number against both phone fields of
// all records, excluding the record with id exclude (uuid.Nil excludes
// nothing). The check is advisory and never fails: if the store is
// unreachable it falls back to the local snapshot and flags the report.
func (d *Detector) CheckPhones(ctx context.Context, exclude uuid.UUID, numbers ...string) DuplicateReport {
	var report DuplicateReport
	seen := make(map[uuid.UUID]struct{})

	for _, number := range numbers {
		national, ok := phone.National(number)
		if !ok {
			continue
		}

		matches, err := d.store.FindByPhone(ctx, national)
		if err != nil {
			d.log.DegradedPath("interviews.duplicate_check", "scanning local collection", err)
			matches = d.scanLocal(national)
			report.Degraded = true
		}

		for _, rec := range matches {
			if rec.ID == exclude {
				continue
			}
			if _, dup := seen[rec.ID]; dup {
				continue
			}
			// The store matches on the stored text; re-check on the parsed
			// national number so formatting differences never split a match.
			if !phone.Same(rec.MobileNumber, number) && !phone.Same(rec.AlternateNumber, number) {
				continue
			}
			seen[rec.ID] = struct{}{}
			report.Matches = append(report.Matches, rec)
		}
	}
	return report
}

func (d *Detector) scanLocal(national string) []domain.Interview {
	var matches []domain.Interview
	for _, rec := range d.collection.Snapshot() {
		if phone.Same(rec.MobileNumber, national) || phone.Same(rec.AlternateNumber, national) {
			matches = append(matches, rec)
		}
	}
	return matches
}
