package drift

import (
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Input is everything a drift rule may inspect for one evaluation.
type Input struct {
	Brand    string
	Current  []domain.SimulationOutcome
	Score    domain.VisibilityScore
	Previous *domain.AnalysisRun
	Now      time.Time
}

// Rule evaluates one drift signal against the current and previous run.
// Rules are independent; the engine concatenates their results in Order.
type Rule interface {
	Name() string
	Order() int
	Evaluate(in Input) []domain.Alert
}

// ByQuery indexes outcomes by exact query text, which is how queries are
// matched across runs.
func ByQuery(outcomes []domain.SimulationOutcome) map[string]domain.SimulationOutcome {
	m := make(map[string]domain.SimulationOutcome, len(outcomes))
	for _, o := range outcomes {
		m[o.Query] = o
	}
	return m
}

// SnapshotOf captures the 0/1 presence state of one outcome.
func SnapshotOf(o domain.SimulationOutcome) domain.StateSnapshot {
	score := 0
	if o.BrandFound {
		score = 1
	}
	return domain.StateSnapshot{Position: o.BrandPosition, Score: score}
}

// PositionRank orders positions for improvement checks; higher is better.
func PositionRank(p domain.BrandPosition) int {
	switch p {
	case domain.PositionTop:
		return 3
	case domain.PositionMiddle:
		return 2
	case domain.PositionBottom:
		return 1
	default:
		return 0
	}
}
