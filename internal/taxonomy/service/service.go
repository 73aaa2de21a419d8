package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Service loads the taxonomy from the settings source into the store.
type Service struct {
	repo  repository.Repository
	store *Store
	bus   events.Bus
	log   *logger.Logger
	group singleflight.Group
}

// New creates a taxonomy service around the given store.
func New(repo repository.Repository, store *Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, store: store, bus: bus, log: log}
}

// Store returns the underlying snapshot store.
func (s *Service) Store() *Store {
	return s.store
}

// Refresh reloads the whole taxonomy and swaps the store snapshot atomically.
// Concurrent refreshes are collapsed into one load. On failure the previous
// snapshot stays in place and the error is returned for the caller to decide;
// refresh is a non-critical path, so most callers log and continue.
func (s *Service) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		snap, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		s.store.Replace(snap)
		s.log.Info("taxonomy reloaded", "main_statuses", len(snap.Mains()))
		if s.bus != nil {
			// Subscribers reclassify their own snapshots against the new
			// taxonomy; wait for them so a refresh only reports success
			// once its effects are visible.
			event := events.TaxonomyReloaded{
				BaseEvent:       events.NewBaseEvent(),
				MainStatusCount: len(snap.Mains()),
			}
			if perr := s.bus.PublishSync(ctx, event); perr != nil {
				s.log.Warn("taxonomy reload handlers failed", "error", perr.Error())
			}
		}
		return nil, nil
	})
	return err
}

func (s *Service) load(ctx context.Context) (*Snapshot, error) {
	rows, err := s.repo.ListMainStatuses(ctx)
	if err != nil {
		return nil, apperr.Unavailable("taxonomy source unreachable", fmt.Errorf("load taxonomy: %w", err))
	}

	// Sub-statuses load in parallel; each goroutine owns one slot, so the
	// taxonomy order of mains is preserved.
	mains := make([]MainStatus, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, row := range rows {
		mains[i] = MainStatus{Name: row.Name}
		if row.Bucket != nil {
			mains[i].Bucket = domain.Bucket(*row.Bucket)
		}

		g.Go(func() error {
			subs, err := s.repo.ListSubStatuses(gctx, row.ID)
			if err != nil {
				return fmt.Errorf("load sub statuses for %q: %w", row.Name, err)
			}
			for _, sub := range subs {
				mains[i].Subs = append(mains[i].Subs, SubStatus{Name: sub.Name})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Unavailable("taxonomy source unreachable", err)
	}

	return NewSnapshot(mains), nil
}
