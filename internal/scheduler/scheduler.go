package scheduler

import (
	"github.com/hibiken/asynq"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Scheduler enqueues the periodic refresh tasks.
type Scheduler struct {
	scheduler *asynq.Scheduler
	log       *logger.Logger
}

// New builds the periodic schedule. Taxonomy changes are rare, interview
// records churn all day, so the working set refreshes more often.
func New(cfg config.SchedulerConfig, log *logger.Logger) (*Scheduler, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})

	queue := asynq.Queue(cfg.GetAsynqQueueName())
	if _, err := scheduler.Register("@every 15m", NewTaxonomyRefreshTask(), queue); err != nil {
		return nil, err
	}
	if _, err := scheduler.Register("@every 2m", NewInterviewsRefreshTask(), queue); err != nil {
		return nil, err
	}

	return &Scheduler{scheduler: scheduler, log: log}, nil
}

// Run starts the scheduler loop and blocks until shutdown.
func (s *Scheduler) Run() error {
	s.log.Info("scheduler started")
	return s.scheduler.Run()
}

// Shutdown stops the scheduler loop.
func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
