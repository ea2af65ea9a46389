package jobs

import (
	"context"
	"log"
	"time"

	"Backend-AssocHub-012/src/services/notifier"
	"Backend-AssocHub-012/src/services/options"

	"github.com/hibiken/asynq"
)

// NewOverdueSweepHandler flags calendar options that have sat unapproved
// for longer than the threshold and mails the board one bundle. Read-only;
// runs on the daily schedule, not per request.
func NewOverdueSweepHandler(svc *options.Service, mail *notifier.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		overdue, err := svc.OverdueOptions(ctx, time.Now())
		if err != nil {
			log.Println("❌ overdue sweep failed:", err)
			return err
		}
		if len(overdue) == 0 {
			log.Println("✅ overdue sweep: nothing to report")
			return nil
		}
		mail.OverdueOptions(overdue)
		log.Printf("✅ overdue sweep: reported %d options", len(overdue))
		return nil
	}
}
