package rules

import (
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
)

const (
	dropThreshold     = 20
	dropHighThreshold = 30
)

type drop struct{}

func (drop) Name() string { return "visibility_drop" }
func (drop) Order() int   { return 0 }

// Evaluate emits at most one run-level alert when the score fell by at
// least dropThreshold points, absolute or relative to the previous score.
func (drop) Evaluate(in drift.Input) []domain.Alert {
	prev := in.Previous.Score.Percentage
	cur := in.Score.Percentage

	absDrop := prev - cur
	if absDrop <= 0 {
		return nil
	}
	relDrop := 0
	if prev > 0 {
		relDrop = absDrop * 100 / prev
	}
	if absDrop < dropThreshold && relDrop < dropThreshold {
		return nil
	}

	severity := domain.SeverityMedium
	if absDrop >= dropHighThreshold {
		severity = domain.SeverityHigh
	}

	msg := fmt.Sprintf(
		"Visibility for %s dropped from %d%% to %d%% (-%d points). Fewer AI answers are surfacing the brand, which hands that space to competitors.",
		in.Brand, prev, cur, absDrop,
	)

	return []domain.Alert{{
		Kind:      domain.AlertVisibilityDrop,
		Severity:  severity,
		Message:   msg,
		Query:     domain.RunLevelQuery,
		Previous:  domain.StateSnapshot{Score: 1},
		Current:   domain.StateSnapshot{Score: 1},
		Timestamp: in.Now,
	}}
}

func init() { drift.Register(drop{}) }
