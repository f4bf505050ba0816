package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/service"
	"github.com/sirupsen/logrus"
)

// runTimeout bounds one scheduled analysis so a stuck oracle cannot wedge
// the scheduler.
const runTimeout = 10 * time.Minute

// Target is one watched brand.
type Target struct {
	Brand       string
	Industry    string
	Competitors []string
}

// ParseWatchlist reads the MONITOR_BRANDS format: comma-separated
// entries of "Brand|Industry|Competitor;Competitor". Malformed entries
// are skipped.
func ParseWatchlist(raw string) []Target {
	var out []Target
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), "|")
		if len(parts) != 3 || parts[0] == "" {
			continue
		}

		var competitors []string
		for _, c := range strings.Split(parts[2], ";") {
			if c = strings.TrimSpace(c); c != "" {
				competitors = append(competitors, c)
			}
		}
		if len(competitors) == 0 {
			continue
		}

		out = append(out, Target{
			Brand:       strings.TrimSpace(parts[0]),
			Industry:    strings.TrimSpace(parts[1]),
			Competitors: competitors,
		})
	}
	return out
}

// Scheduler re-runs analysis for every watched brand on a cron schedule,
// giving the drift engine successive runs to compare without manual calls.
type Scheduler struct {
	orchestrator *service.Orchestrator
	targets      []Target
	spec         string
	log          *logrus.Logger
	cron         *cron.Cron
}

func NewScheduler(orchestrator *service.Orchestrator, spec string, targets []Target, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		orchestrator: orchestrator,
		targets:      targets,
		spec:         spec,
		log:          log,
	}
}

// Start registers the cron job. No-op when the spec or watchlist is empty.
func (s *Scheduler) Start() error {
	if s.spec == "" || len(s.targets) == 0 {
		s.log.Info("watchlist monitor disabled")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.spec, s.runAll); err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithFields(logrus.Fields{"spec": s.spec, "brands": len(s.targets)}).Info("watchlist monitor started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) runAll() {
	for _, t := range s.targets {
		s.runOne(t)
	}
}

func (s *Scheduler) runOne(t Target) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	req := domain.AnalysisRequest{
		Brand:       t.Brand,
		Industry:    t.Industry,
		Competitors: t.Competitors,
	}

	report, err := s.orchestrator.Run(ctx, req, domain.RunOptions{Mode: domain.ModeFull})
	if err != nil {
		s.log.WithError(err).WithField("brand", t.Brand).Error("scheduled analysis failed")
		return
	}

	summary := drift.Summarize(report.Run.Alerts)
	entry := s.log.WithFields(logrus.Fields{
		"brand":      t.Brand,
		"visibility": report.Run.Score.Percentage,
		"critical":   summary.Critical,
		"gains":      summary.Gains,
	})
	if summary.Critical > 0 {
		entry.Warn("scheduled analysis found visibility drift")
	} else {
		entry.Info("scheduled analysis completed")
	}
}
