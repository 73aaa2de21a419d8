// Package scheduler provides the background refresh jobs that keep the
// taxonomy and the interview working set warm.
package scheduler

import (
	"github.com/hibiken/asynq"
)

// Task type names routed through the queue.
const (
	TypeTaxonomyRefresh   = "taxonomy:refresh"
	TypeInterviewsRefresh = "interviews:refresh"
)

// NewTaxonomyRefreshTask builds the periodic taxonomy reload task.
func NewTaxonomyRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeTaxonomyRefresh, nil)
}

// NewInterviewsRefreshTask builds the periodic working-set reload task.
func NewInterviewsRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeInterviewsRefresh, nil)
}
