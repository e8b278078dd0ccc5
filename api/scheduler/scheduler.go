package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
)

// Scheduler handles periodic background jobs for the dashboard
type Scheduler struct {
	cron *cron.Cron
	CDB  databases.CaseDatabase
	TDB  databases.GlobalTaskDatabase
	Conf *config.Config
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cDB databases.CaseDatabase, tDB databases.GlobalTaskDatabase, conf *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		CDB:  cDB,
		TDB:  tDB,
		Conf: conf,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Recompute the risk snapshot and mail the digest daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.sendDailyDigest)
	if err != nil {
		zap.S().Errorw("failed to register daily digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Risk digest scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Risk digest scheduler stopped")
}

// sendDailyDigest recomputes the analytics snapshot from the live collections
// and emails a plain-text risk summary. Skips silently when SendGrid or the
// recipient address is not configured.
func (s *Scheduler) sendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if s.Conf.SendgridKey == "" || s.Conf.DigestEmail == "" {
		zap.S().Debug("digest email not configured, skipping daily digest")
		return
	}

	cases, err := s.CDB.Find(ctx, bson.M{})
	if err != nil {
		zap.S().Errorw("failed to fetch cases for daily digest", "error", err)
		return
	}
	tasks, err := s.TDB.Find(ctx, bson.M{})
	if err != nil {
		zap.S().Errorw("failed to fetch tasks for daily digest", "error", err)
		return
	}

	rate := s.Conf.HourlyRate
	if rate <= 0 {
		rate = config.DefaultHourlyRate
	}
	snapshot := analytics.BuildSnapshot(cases, tasks, analytics.Day(time.Now().UTC()), rate)

	if err := s.sendEmail("Daily Case Risk Digest "+snapshot.ReferenceDate, renderDigest(snapshot)); err != nil {
		zap.S().Errorw("failed to send daily digest", "error", err)
		return
	}

	zap.S().Infow("Daily digest sent",
		"activeCases", snapshot.ActiveCount,
		"overdueCourts", len(snapshot.OverdueCourts),
		"evidenceAlerts", len(snapshot.EvidenceAlerts),
	)
}

// renderDigest flattens the snapshot into the plain-text digest body
func renderDigest(snap analytics.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Case risk digest for %s\n\n", snap.ReferenceDate)
	fmt.Fprintf(&b, "Active cases: %d\n", snap.ActiveCount)
	fmt.Fprintf(&b, "Evidence alerts: %d\n", len(snap.EvidenceAlerts))
	fmt.Fprintf(&b, "Overdue court dates: %d\n", len(snap.OverdueCourts))
	fmt.Fprintf(&b, "Urgent pre-trials: %d\n", len(snap.UrgentPreTrials))
	fmt.Fprintf(&b, "Cold starts: %d\n", len(snap.ColdStarts))
	fmt.Fprintf(&b, "Stagnant cases: %d\n", len(snap.StagnantRisks))
	fmt.Fprintf(&b, "Capacity warnings: %d\n", len(snap.CapacityWarnings))

	if len(snap.OverdueCourts) > 0 {
		b.WriteString("\nOverdue court dates:\n")
		for _, c := range snap.OverdueCourts {
			fmt.Fprintf(&b, "  - %s (court date %s)\n", c.DefendantName(), c.NextCourtDate)
		}
	}
	if len(snap.UrgentPreTrials) > 0 {
		b.WriteString("\nUrgent pre-trials:\n")
		for _, c := range snap.UrgentPreTrials {
			fmt.Fprintf(&b, "  - %s: %s on %s\n", c.DefendantName(), c.NextEventDescription, c.NextCourtDate)
		}
	}
	if len(snap.StagnantRisks) > 0 {
		b.WriteString("\nStagnant cases:\n")
		for _, sc := range snap.StagnantRisks {
			fmt.Fprintf(&b, "  - %s (%d days idle)\n", sc.DefendantName(), sc.StagnantDays)
		}
	}

	return b.String()
}

func (s *Scheduler) sendEmail(subject, plainText string) error {
	from := mail.NewEmail("Investigator Dashboard", "no-reply@investigator-dashboard.app")
	to := mail.NewEmail("", s.Conf.DigestEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "<pre>"+plainText+"</pre>")
	client := sendgrid.NewSendClient(s.Conf.SendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
