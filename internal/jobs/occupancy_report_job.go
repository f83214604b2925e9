package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OccupancyReportJob periodically logs the dining room occupancy.
// It is observational only and never mutates orders or tables.
type OccupancyReportJob struct {
	handler queries.GetTableOccupancyQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyReportJob creates a job that reports table occupancy every minute.
func NewOccupancyReportJob(handler queries.GetTableOccupancyQueryHandler, logger *slog.Logger) *OccupancyReportJob {
	return &OccupancyReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "occupancy_report_job"),
	}
}

// Start begins the occupancy report job.
func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		tables, err := j.handler.Handle(ctx, queries.NewGetTableOccupancyQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
			return
		}

		occupied := 0
		var activeOrders int64
		for _, tbl := range tables {
			if tbl.ActiveOrders > 0 {
				occupied++
			}
			activeOrders += tbl.ActiveOrders
		}

		j.logger.InfoContext(ctx, "Dining room occupancy",
			"tables", len(tables),
			"occupied", occupied,
			"activeOrders", activeOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started (running every minute)")
	return nil
}

// Stop stops the occupancy report job.
func (j *OccupancyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}
