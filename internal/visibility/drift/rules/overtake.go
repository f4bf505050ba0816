package rules

import (
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
)

type overtake struct{}

func (overtake) Name() string { return "competitor_overtake" }
func (overtake) Order() int   { return 2 }

// Evaluate fires when the brand's position worsened on a query while the
// competitor set for that query grew or gained a new member. Intentionally
// independent of the disappearance rule; both can fire for one query.
func (overtake) Evaluate(in drift.Input) []domain.Alert {
	prev := drift.ByQuery(in.Previous.Outcomes)

	var out []domain.Alert
	for _, cur := range in.Current {
		p, ok := prev[cur.Query]
		if !ok {
			continue
		}
		if p.BrandPosition != domain.PositionTop && p.BrandPosition != domain.PositionMiddle {
			continue
		}

		worsened := cur.BrandPosition == domain.PositionAbsent ||
			(p.BrandPosition == domain.PositionTop && cur.BrandPosition != domain.PositionTop)
		if !worsened {
			continue
		}

		newcomer := firstNewcomer(p.CompetitorsFound, cur.CompetitorsFound)
		grew := len(cur.CompetitorsFound) > len(p.CompetitorsFound)
		if newcomer == "" && !grew {
			continue
		}

		rival := newcomer
		if rival == "" {
			rival = firstKnown(cur.CompetitorsFound, p.CompetitorsFound)
		}

		out = append(out, domain.Alert{
			Kind:     domain.AlertCompetitorOvertake,
			Severity: domain.SeverityHigh,
			Message: fmt.Sprintf(
				"%s slipped on %q while %s gained ground in the same answer. Buyers asking this are now steered toward the competitor first.",
				in.Brand, cur.Query, rival,
			),
			Query:     cur.Query,
			Previous:  drift.SnapshotOf(p),
			Current:   drift.SnapshotOf(cur),
			Timestamp: in.Now,
		})
	}
	return out
}

func firstNewcomer(prev, cur []string) string {
	seen := make(map[string]bool, len(prev))
	for _, c := range prev {
		seen[c] = true
	}
	for _, c := range cur {
		if !seen[c] {
			return c
		}
	}
	return ""
}

func firstKnown(cur, prev []string) string {
	if len(cur) > 0 {
		return cur[0]
	}
	if len(prev) > 0 {
		return prev[0]
	}
	return "a competitor"
}

func init() { drift.Register(overtake{}) }
