package notifier

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"Backend-AssocHub-012/src/models"
)

// Service sends board notifications. Failures are logged, never propagated:
// mail must not roll back the operation that triggered it.
type Service struct {
	sender MailSender
	to     string
}

func NewService(sender MailSender) *Service {
	to := os.Getenv("BOARD_EMAIL")
	if to == "" {
		to = "board@example.org"
	}
	return &Service{sender: sender, to: to}
}

func (s *Service) send(subject, html string) {
	if s == nil || s.sender == nil {
		return
	}
	if err := s.sender.Send(s.to, subject, html); err != nil {
		log.Println("⚠️ mail send failed:", err)
	}
}

// PendingProposal announces an update proposal waiting for board approval.
func (s *Service) PendingProposal(activityName, ref string) {
	appURL := os.Getenv("APP_URL")
	s.send(
		"Activity update proposal pending: "+activityName,
		fmt.Sprintf(
			`<p>A member proposed changes to <b>%s</b>.</p>
<p><a href="%s/admin/update-proposals/%s">Review the proposal</a></p>`,
			activityName, appURL, ref,
		),
	)
}

// OverdueOptions bundles options that have sat unapproved too long into a
// single mail.
func (s *Service) OverdueOptions(opts []models.CalendarOption) {
	if len(opts) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("<p>The following calendar options are still unapproved:</p><ul>")
	for _, o := range opts {
		fmt.Fprintf(&b, "<li>%s — %s (%s)</li>",
			o.BeginTime.Format("2006-01-02 15:04"),
			o.EndTime.Format("2006-01-02 15:04"),
			o.Type,
		)
	}
	b.WriteString("</ul>")
	s.send(
		fmt.Sprintf("%d calendar options awaiting approval (%s)",
			len(opts), time.Now().Format("2006-01-02")),
		b.String(),
	)
}
