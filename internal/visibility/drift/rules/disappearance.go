package rules

import (
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
)

type disappearance struct{}

func (disappearance) Name() string { return "brand_disappeared" }
func (disappearance) Order() int   { return 1 }

// Evaluate flags queries where the brand fell from the top position or
// vanished entirely. Queries are matched across runs by exact text; a
// query gets at most one disappearance alert per run.
func (disappearance) Evaluate(in drift.Input) []domain.Alert {
	prev := drift.ByQuery(in.Previous.Outcomes)

	var out []domain.Alert
	for _, cur := range in.Current {
		p, ok := prev[cur.Query]
		if !ok {
			continue
		}

		if p.BrandPosition == domain.PositionTop && cur.BrandPosition != domain.PositionTop {
			out = append(out, domain.Alert{
				Kind:     domain.AlertBrandDisappeared,
				Severity: domain.SeverityHigh,
				Message: fmt.Sprintf(
					"%s held the top spot for %q and now shows as %s. Losing the lead answer on this query directly cuts AI referral traffic.",
					in.Brand, cur.Query, string(cur.BrandPosition),
				),
				Query:     cur.Query,
				Previous:  drift.SnapshotOf(p),
				Current:   drift.SnapshotOf(cur),
				Timestamp: in.Now,
			})
			continue
		}

		if p.BrandFound && !cur.BrandFound {
			out = append(out, domain.Alert{
				Kind:     domain.AlertBrandDisappeared,
				Severity: domain.SeverityMedium,
				Message: fmt.Sprintf(
					"%s was mentioned for %q in the previous run and is missing now. The brand no longer appears in this answer at all.",
					in.Brand, cur.Query,
				),
				Query:     cur.Query,
				Previous:  drift.SnapshotOf(p),
				Current:   drift.SnapshotOf(cur),
				Timestamp: in.Now,
			})
		}
	}
	return out
}

func init() { drift.Register(disappearance{}) }
