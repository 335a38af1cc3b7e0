package cronjob

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/projectstage/config-backend/internal/projects/service"
)

// Scheduler periodically re-runs the ingestion pipeline so staged entries
// left behind by failed ingests get retried without waiting for the next
// upload.
type Scheduler struct {
	spec     string
	pipeline *service.Pipeline
}

func NewScheduler(spec string, pipeline *service.Pipeline) *Scheduler {
	return &Scheduler{spec: spec, pipeline: pipeline}
}

// Start initializes the sweep cron task.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		res := s.pipeline.Run(context.Background())
		if len(res.Succeeded)+len(res.Duplicates)+len(res.Failed) > 0 {
			log.Printf("Ingestion sweep: succeeded=%d duplicates=%d failed=%d",
				len(res.Succeeded), len(res.Duplicates), len(res.Failed))
		}
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (ingestion sweep %q)", s.spec)
	c.Start()
}
