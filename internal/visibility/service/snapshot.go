package service

import (
	"fmt"
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/scoring"
)

// Snapshot is the stable external projection of a run report. Downstream
// systems depend on this shape, not the full internal report.
type Snapshot struct {
	Brand          string                `json:"brand"`
	GeneratedAt    time.Time             `json:"generated_at"`
	Overview       Overview              `json:"overview"`
	Competitors    []CompetitorStanding  `json:"competitors"`
	Queries        QueryIntelligence     `json:"queries"`
	Gaps           GapOverview           `json:"gaps"`
	GeneratedCount int                   `json:"generated_count"`
	PublishedCount int                   `json:"published_count"`
	Alerts         drift.Summary         `json:"alerts"`
	ImpactSummary  string                `json:"impact_summary"`
}

type Overview struct {
	VisibilityPercentage int          `json:"visibility_percentage"`
	Band                 string       `json:"band"`
	TotalQueries         int          `json:"total_queries"`
	BrandMentions        int          `json:"brand_mentions"`
	TopPositions         int          `json:"top_positions"`
	Trend                domain.Trend `json:"trend"`
	Delta                int          `json:"delta"`
}

// CompetitorStanding benchmarks one competitor across the run's answers.
type CompetitorStanding struct {
	Name        string `json:"name"`
	Appearances int    `json:"appearances"`
	SharePct    int    `json:"share_pct"`
}

type QueryIntelligence struct {
	BrandPresent []string `json:"brand_present"`
	BrandAbsent  []string `json:"brand_absent"`
	Comparisons  []string `json:"comparisons"`
}

type GapOverview struct {
	Total      int      `json:"total"`
	TopTargets []string `json:"top_targets"`
}

// BuildSnapshot derives the reduced projection from a completed run.
func BuildSnapshot(run *domain.AnalysisRun, comparison *domain.RunComparison, generatedCount, publishedCount int) Snapshot {
	overview := Overview{
		VisibilityPercentage: run.Score.Percentage,
		Band:                 scoring.Band(run.Score.Percentage),
		TotalQueries:         len(run.Queries),
		BrandMentions:        run.Score.Breakdown.BrandMentions,
		TopPositions:         run.Score.Breakdown.TopPositions,
		Trend:                domain.TrendStable,
	}
	if comparison != nil {
		overview.Trend = comparison.Trend
		overview.Delta = comparison.Delta
	}

	alertSummary := drift.Summarize(run.Alerts)

	return Snapshot{
		Brand:          run.Request.Brand,
		GeneratedAt:    run.CreatedAt,
		Overview:       overview,
		Competitors:    benchmark(run),
		Queries:        queryIntelligence(run),
		Gaps:           gapOverview(run),
		GeneratedCount: generatedCount,
		PublishedCount: publishedCount,
		Alerts:         alertSummary,
		ImpactSummary:  impactSummary(run, overview, alertSummary),
	}
}

func benchmark(run *domain.AnalysisRun) []CompetitorStanding {
	counts := map[string]int{}
	for _, o := range run.Outcomes {
		for _, c := range o.CompetitorsFound {
			counts[c]++
		}
	}

	total := len(run.Outcomes)
	out := make([]CompetitorStanding, 0, len(run.Request.Competitors))
	for _, name := range run.Request.Competitors {
		share := 0
		if total > 0 {
			share = counts[name] * 100 / total
		}
		out = append(out, CompetitorStanding{Name: name, Appearances: counts[name], SharePct: share})
	}
	return out
}

func queryIntelligence(run *domain.AnalysisRun) QueryIntelligence {
	qi := QueryIntelligence{
		BrandPresent: []string{},
		BrandAbsent:  []string{},
		Comparisons:  []string{},
	}
	for _, o := range run.Outcomes {
		if o.BrandFound {
			qi.BrandPresent = append(qi.BrandPresent, o.Query)
		} else {
			qi.BrandAbsent = append(qi.BrandAbsent, o.Query)
		}
	}
	for _, q := range run.Queries {
		if q.Intent == domain.IntentComparison {
			qi.Comparisons = append(qi.Comparisons, q.Text)
		}
	}
	return qi
}

func gapOverview(run *domain.AnalysisRun) GapOverview {
	g := GapOverview{TopTargets: []string{}}
	g.Total = len(run.Recommendations)
	for i, rec := range run.Recommendations {
		if i >= 3 {
			break
		}
		g.TopTargets = append(g.TopTargets, rec.TargetQuery)
	}
	return g
}

func impactSummary(run *domain.AnalysisRun, overview Overview, alerts drift.Summary) string {
	s := fmt.Sprintf(
		"%s shows %s AI visibility at %d%%, appearing in %d of %d simulated answers.",
		run.Request.Brand, overview.Band, overview.VisibilityPercentage,
		overview.BrandMentions, overview.TotalQueries,
	)
	if alerts.Critical > 0 {
		s += fmt.Sprintf(" %d alert(s) need attention.", alerts.Critical)
	}
	if len(run.Recommendations) > 0 {
		s += fmt.Sprintf(" %d content opportunities identified.", len(run.Recommendations))
	}
	return s
}
