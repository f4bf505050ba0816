package rules

import (
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/drift"
)

type gains struct{}

func (gains) Name() string { return "visibility_gain" }
func (gains) Order() int   { return 3 }

// Evaluate reports informational wins: a new appearance on a query, or a
// strict position improvement. Always low severity.
func (gains) Evaluate(in drift.Input) []domain.Alert {
	prev := drift.ByQuery(in.Previous.Outcomes)

	var out []domain.Alert
	for _, cur := range in.Current {
		p, ok := prev[cur.Query]
		if !ok {
			continue
		}

		var msg string
		switch {
		case !p.BrandFound && cur.BrandFound:
			msg = fmt.Sprintf("%s now appears for %q where it was absent before (%s position).",
				in.Brand, cur.Query, string(cur.BrandPosition))
		case p.BrandFound && cur.BrandFound && drift.PositionRank(cur.BrandPosition) > drift.PositionRank(p.BrandPosition):
			msg = fmt.Sprintf("%s moved from %s to %s position for %q.",
				in.Brand, string(p.BrandPosition), string(cur.BrandPosition), cur.Query)
		default:
			continue
		}

		out = append(out, domain.Alert{
			Kind:      domain.AlertVisibilityGain,
			Severity:  domain.SeverityLow,
			Message:   msg,
			Query:     cur.Query,
			Previous:  drift.SnapshotOf(p),
			Current:   drift.SnapshotOf(cur),
			Timestamp: in.Now,
		})
	}
	return out
}

func init() { drift.Register(gains{}) }
