package scheduler

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// TaxonomyRefresher reloads the status taxonomy.
type TaxonomyRefresher interface {
	Refresh(ctx context.Context) error
}

// CollectionRefresher reloads the interview working set.
type CollectionRefresher interface {
	Reload(ctx context.Context) error
}

// Worker consumes the refresh queue.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

// NewWorker builds the queue consumer for the refresh tasks.
func NewWorker(cfg config.SchedulerConfig, taxonomy TaxonomyRefresher, interviews CollectionRefresher, log *logger.Logger) (*Worker, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: cfg.GetAsynqConcurrency(),
		Queues: map[string]int{
			cfg.GetAsynqQueueName(): 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTaxonomyRefresh, func(ctx context.Context, _ *asynq.Task) error {
		if err := taxonomy.Refresh(ctx); err != nil {
			log.DatabaseError("scheduler.taxonomy_refresh", err)
			return err
		}
		log.Info("taxonomy refreshed")
		return nil
	})
	mux.HandleFunc(TypeInterviewsRefresh, func(ctx context.Context, _ *asynq.Task) error {
		if err := interviews.Reload(ctx); err != nil {
			log.DatabaseError("scheduler.interviews_refresh", err)
			return err
		}
		log.Info("interview working set refreshed")
		return nil
	})

	return &Worker{server: server, mux: mux, log: log}, nil
}

// Run starts the consumer loop and blocks until shutdown.
func (w *Worker) Run() error {
	w.log.Info("worker started")
	return w.server.Run(w.mux)
}

// Shutdown stops the consumer loop, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
