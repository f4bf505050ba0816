package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/content"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
	_ "github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift/rules"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/gaps"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/oracle"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/planner"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/publish"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/repository"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/scoring"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/simulator"
	"github.com/sirupsen/logrus"
)

const (
	defaultMarket = "United States"

	// maxSynthesized bounds how many top recommendations get full drafts.
	maxSynthesized = 2

	// trendBand is the dead zone around zero within which the run-over-run
	// trend counts as stable.
	trendBand = 5
)

// Report is the aggregate result of one orchestration call. Every field
// has a well-defined empty default; consumers never need deep null checks.
type Report struct {
	Run              *domain.AnalysisRun       `json:"run"`
	Comparison       *domain.RunComparison     `json:"comparison,omitempty"`
	Generated        []domain.GeneratedContent `json:"generated"`
	Published        []domain.PublishedContent `json:"published"`
	PublishFailures  []string                  `json:"publish_failures"`
	Snapshot         Snapshot                  `json:"snapshot"`
	Persisted        bool                      `json:"persisted"`
	PersistenceError string                    `json:"persistence_error,omitempty"`
}

// Orchestrator sequences the full pipeline for one request: plan,
// simulate, score, compare, recommend, optionally generate and publish,
// persist, derive the comparison. Stages after simulation absorb partial
// failure; only planning/simulation leaving zero outcomes fails the run.
type Orchestrator struct {
	completer oracle.Completer
	repo      repository.RunRepository
	archive   *repository.Archive
	gateway   publish.Gateway
	log       *logrus.Logger

	// brandLocks serializes runs per brand key so overlapping runs cannot
	// read divergent "previous" snapshots.
	mu         sync.Mutex
	brandLocks map[string]*sync.Mutex
}

func NewOrchestrator(completer oracle.Completer, repo repository.RunRepository, gateway publish.Gateway, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		completer:  completer,
		repo:       repo,
		gateway:    gateway,
		log:        log,
		brandLocks: map[string]*sync.Mutex{},
	}
}

func (o *Orchestrator) brandLock(brand string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	key := repository.BrandKey(brand)
	l, ok := o.brandLocks[key]
	if !ok {
		l = &sync.Mutex{}
		o.brandLocks[key] = l
	}
	return l
}

// WithArchive attaches an optional Postgres archive sink.
func (o *Orchestrator) WithArchive(archive *repository.Archive) *Orchestrator {
	o.archive = archive
	return o
}

func validate(req *domain.AnalysisRequest) error {
	if req.Brand == "" {
		return &domain.ValidationError{Field: "brand", Reason: "must not be empty"}
	}
	if len(req.Competitors) == 0 {
		return &domain.ValidationError{Field: "competitors", Reason: "must list at least one competitor"}
	}
	if req.Market == "" {
		req.Market = defaultMarket
	}
	return nil
}

// Run executes one full analysis for a brand. The returned report is
// best-effort complete even when persistence or optional stages failed.
func (o *Orchestrator) Run(ctx context.Context, req domain.AnalysisRequest, opts domain.RunOptions) (*Report, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeFull
	}

	lock := o.brandLock(req.Brand)
	lock.Lock()
	defer lock.Unlock()

	completer := o.completer
	if opts.Mode == domain.ModeDemo {
		completer = oracle.NewDemo(req.Brand, req.Competitors)
	}

	log := o.log.WithFields(logrus.Fields{"brand": req.Brand, "mode": string(opts.Mode)})
	log.Info("analysis run started")

	// Planning
	queries := planner.New(completer, o.log).Plan(ctx, req)

	// Simulating
	outcomes := simulator.New(completer, o.log).SimulateAll(ctx, queries, req.Brand, req.Competitors)
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("analysis failed: simulation produced no outcomes")
	}

	// Scoring
	score := scoring.Score(outcomes)

	// Comparing
	previous := o.previousRun(ctx, req.Brand)
	alerts := drift.Evaluate(req.Brand, outcomes, score, previous)

	// Recommending
	recommendations := gaps.Analyze(outcomes, req)

	// Generating (optional)
	generated := []domain.GeneratedContent{}
	if opts.GenerateContent {
		generated = o.synthesize(ctx, completer, recommendations, req)
	}

	// Publishing (optional)
	published := []domain.PublishedContent{}
	publishFailures := []string{}
	if opts.AutoPublish && len(generated) > 0 {
		published, publishFailures = o.publishAll(ctx, generated, opts.Credentials)
	}

	run := &domain.AnalysisRun{
		Request:         req,
		Queries:         queries,
		Outcomes:        outcomes,
		Score:           score,
		Alerts:          alerts,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	// Persisted
	report := &Report{
		Run:             run,
		Generated:       generated,
		Published:       published,
		PublishFailures: publishFailures,
		Persisted:       true,
	}
	if err := o.repo.Store(ctx, run); err != nil {
		// The caller still receives the full result; only the next run's
		// comparison is affected.
		log.WithError(err).Error("failed to persist run")
		report.Persisted = false
		report.PersistenceError = err.Error()
	} else if o.archive != nil {
		if err := o.archive.Insert(ctx, run); err != nil {
			log.WithError(err).Warn("failed to archive run")
		}
	}

	report.Comparison = compare(previous, score)
	report.Snapshot = BuildSnapshot(run, report.Comparison, len(generated), len(published))

	log.WithFields(logrus.Fields{
		"run_id":     run.RunID,
		"visibility": score.Percentage,
		"alerts":     len(alerts),
	}).Info("analysis run completed")

	return report, nil
}

func (o *Orchestrator) previousRun(ctx context.Context, brand string) *domain.AnalysisRun {
	prev, err := o.repo.Latest(ctx, brand)
	if err != nil {
		if !errors.Is(err, domain.ErrNoRuns) {
			o.log.WithError(err).Warn("previous run unavailable, treating run as baseline")
		}
		return nil
	}
	return prev
}

func (o *Orchestrator) synthesize(ctx context.Context, completer oracle.Completer, recs []domain.ContentRecommendation, req domain.AnalysisRequest) []domain.GeneratedContent {
	synth := content.NewSynthesizer(completer)

	n := len(recs)
	if n > maxSynthesized {
		n = maxSynthesized
	}

	out := []domain.GeneratedContent{}
	for _, rec := range recs[:n] {
		draft, err := synth.Synthesize(ctx, rec, req)
		if err != nil {
			o.log.WithError(err).WithField("query", rec.TargetQuery).Warn("content synthesis failed, skipping recommendation")
			continue
		}
		out = append(out, *draft)
	}
	return out
}

func (o *Orchestrator) publishAll(ctx context.Context, generated []domain.GeneratedContent, creds *domain.PublishCredentials) ([]domain.PublishedContent, []string) {
	if creds == nil {
		return []domain.PublishedContent{}, []string{(&domain.PublishError{Reason: "missing or incomplete publish credentials"}).Error()}
	}

	published := []domain.PublishedContent{}
	failures := []string{}
	for _, g := range generated {
		doc := publish.Document{
			Title:   g.Title,
			HTML:    g.HTML,
			Slug:    g.Slug,
			Status:  "draft",
			Excerpt: g.Excerpt,
		}
		post, err := o.gateway.Publish(ctx, doc, *creds)
		if err != nil {
			o.log.WithError(err).WithField("title", g.Title).Warn("publish failed")
			failures = append(failures, err.Error())
			continue
		}
		published = append(published, *post)
	}
	return published, failures
}

func compare(previous *domain.AnalysisRun, score domain.VisibilityScore) *domain.RunComparison {
	if previous == nil {
		return nil
	}

	delta := score.Percentage - previous.Score.Percentage
	trend := domain.TrendStable
	switch {
	case delta > trendBand:
		trend = domain.TrendImproved
	case delta < -trendBand:
		trend = domain.TrendDeclined
	}

	return &domain.RunComparison{
		PreviousRunID:      previous.RunID,
		PreviousPercentage: previous.Score.Percentage,
		CurrentPercentage:  score.Percentage,
		Delta:              delta,
		Trend:              trend,
		PreviousAt:         previous.CreatedAt,
	}
}

// History returns stored run summaries for a brand, most recent first.
func (o *Orchestrator) History(ctx context.Context, brand string, limit int) ([]domain.RunSummary, error) {
	return o.repo.History(ctx, brand, limit)
}

// RunByID fetches one stored run.
func (o *Orchestrator) RunByID(ctx context.Context, runID string) (*domain.AnalysisRun, error) {
	return o.repo.ByID(ctx, runID)
}

// LatestSnapshot rebuilds the snapshot projection of the latest stored
// run without re-running analysis.
func (o *Orchestrator) LatestSnapshot(ctx context.Context, brand string) (*Snapshot, error) {
	latest, err := o.repo.Latest(ctx, brand)
	if err != nil {
		return nil, err
	}

	var comparison *domain.RunComparison
	if prev, err := o.repo.Previous(ctx, brand); err == nil {
		comparison = compare(prev, latest.Score)
	}

	snap := BuildSnapshot(latest, comparison, 0, 0)
	return &snap, nil
}
