package jobs

import (
	"context"
	"log/slog"

	"dealership/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PaymentReminderJob periodically sweeps payments awaiting confirmation.
// Runs every minute and logs each open payment so dealer staff can chase it.
type PaymentReminderJob struct {
	handler queries.GetPendingTasksQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReminderJob creates a new reminder job backed by the dashboard query.
func NewPaymentReminderJob(handler queries.GetPendingTasksQueryHandler, logger *slog.Logger) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		tasks, handleErr := j.handler.Handle(ctx, queries.NewGetPendingTasksQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment reminder sweep failed", "error", handleErr)
			return
		}

		for _, p := range tasks.PendingPayments {
			j.logger.InfoContext(ctx, "Payment awaiting confirmation",
				"payment_id", p.PaymentID.String(),
				"order_id", p.OrderID.String(),
				"amount", p.Amount,
				"created_at", p.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
