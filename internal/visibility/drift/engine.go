package drift

import (
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Evaluate runs every registered rule against the pair (current, previous)
// and concatenates their alerts. A first run has no previous and is a
// baseline, never an incident.
func Evaluate(brand string, current []domain.SimulationOutcome, score domain.VisibilityScore, previous *domain.AnalysisRun) []domain.Alert {
	if previous == nil {
		return []domain.Alert{}
	}

	in := Input{
		Brand:    brand,
		Current:  current,
		Score:    score,
		Previous: previous,
		Now:      time.Now().UTC(),
	}

	alerts := []domain.Alert{}
	for _, r := range All() {
		alerts = append(alerts, r.Evaluate(in)...)
	}
	return alerts
}

// Summary is the rollup used by snapshots and the monitor. Gains are
// informational and counted apart from the critical kinds.
type Summary struct {
	Total      int                            `json:"total"`
	Critical   int                            `json:"critical"`
	Gains      int                            `json:"gains"`
	BySeverity map[domain.AlertSeverity]int   `json:"by_severity"`
	ByKind     map[domain.AlertKind]int       `json:"by_kind"`
}

func Summarize(alerts []domain.Alert) Summary {
	s := Summary{
		BySeverity: map[domain.AlertSeverity]int{},
		ByKind:     map[domain.AlertKind]int{},
	}
	for _, a := range alerts {
		s.Total++
		s.BySeverity[a.Severity]++
		s.ByKind[a.Kind]++
		if a.Kind == domain.AlertVisibilityGain {
			s.Gains++
		} else {
			s.Critical++
		}
	}
	return s
}
