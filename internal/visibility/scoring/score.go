package scoring

import (
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Point weights per simulated response. Max per response is
// mentionPoints + topBonus.
const (
	mentionPoints     = 2
	topBonus          = 3
	middleBonus       = 1
	negativePenalty   = 2
	competitorPenalty = 1
)

// Score reduces a run's outcomes to a 0-100 visibility score with an
// auditable breakdown. Pure function: identical input yields identical
// output, including the explanation text.
func Score(outcomes []domain.SimulationOutcome) domain.VisibilityScore {
	var b domain.ScoreBreakdown
	total := 0

	for _, o := range outcomes {
		if o.BrandFound {
			b.BrandMentions++
			total += mentionPoints
			switch o.BrandPosition {
			case domain.PositionTop:
				b.TopPositions++
				total += topBonus
			case domain.PositionMiddle:
				b.MiddlePositions++
				total += middleBonus
			}
			if o.Sentiment == domain.SentimentNegative {
				b.SentimentPenalty += negativePenalty
				total -= negativePenalty
			}
		}
		b.CompetitorPenalty += competitorPenalty * len(o.CompetitorsFound)
		total -= competitorPenalty * len(o.CompetitorsFound)
	}

	if total < 0 {
		total = 0
	}

	maxPossible := len(outcomes) * (mentionPoints + topBonus)
	pct := roundPct(total, maxPossible)

	return domain.VisibilityScore{
		Raw:         total,
		MaxPossible: maxPossible,
		Percentage:  pct,
		Explanation: explain(pct, b, len(outcomes)),
		Breakdown:   b,
	}
}

func roundPct(total, maxPossible int) int {
	denom := maxPossible
	if denom < 1 {
		denom = 1
	}
	// round(total/denom*100) in integer arithmetic
	return (total*100 + denom/2) / denom
}

// Band returns the qualitative label for a percentage.
func Band(pct int) string {
	switch {
	case pct >= 70:
		return "Strong"
	case pct >= 50:
		return "Moderate"
	case pct >= 25:
		return "Developing"
	default:
		return "Low"
	}
}

func explain(pct int, b domain.ScoreBreakdown, n int) string {
	return fmt.Sprintf(
		"%s AI visibility at %d%%: brand mentioned in %d of %d responses, top position in %d.",
		Band(pct), pct, b.BrandMentions, n, b.TopPositions,
	)
}
