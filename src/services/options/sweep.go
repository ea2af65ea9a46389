package options

import (
	"context"
	"time"

	"Backend-AssocHub-012/src/models"
)

// OverdueAfter is how long an option may sit unapproved before the daily
// sweep flags it.
const OverdueAfter = 3 * 7 * 24 * time.Hour

// OverdueOptions returns pending options that have waited longer than the
// threshold. Read-only; the sweep job bundles the result into one
// notification.
func (s *Service) OverdueOptions(ctx context.Context, now time.Time) ([]models.CalendarOption, error) {
	return s.options.Overdue(ctx, now.Add(-OverdueAfter))
}
