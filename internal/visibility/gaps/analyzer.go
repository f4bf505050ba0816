package gaps

import (
	"sort"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Bucket caps: competitive gaps matter most, pure gaps least.
const (
	maxCompetitiveGaps = 5
	maxWeakPositions   = 3
	maxPureGaps        = 2
)

// Analyze classifies weak or absent queries into content recommendations.
// Three buckets: brand absent with competitors present (high), brand
// weakly positioned with competitors present (medium), and pure content
// gaps with no competitive threat (low). Output is sorted by priority.
func Analyze(outcomes []domain.SimulationOutcome, req domain.AnalysisRequest) []domain.ContentRecommendation {
	recs := []domain.ContentRecommendation{}

	competitive := 0
	weak := 0
	pure := 0
	for _, o := range outcomes {
		switch {
		case !o.BrandFound && len(o.CompetitorsFound) > 0:
			if competitive < maxCompetitiveGaps {
				recs = append(recs, recommend(o.Query, req.Brand, domain.PriorityHigh))
				competitive++
			}
		case o.BrandFound &&
			(o.BrandPosition == domain.PositionMiddle || o.BrandPosition == domain.PositionBottom) &&
			len(o.CompetitorsFound) > 0:
			if weak < maxWeakPositions {
				recs = append(recs, recommend(o.Query, req.Brand, domain.PriorityMedium))
				weak++
			}
		case !o.BrandFound && len(o.CompetitorsFound) == 0:
			if pure < maxPureGaps {
				recs = append(recs, recommend(o.Query, req.Brand, domain.PriorityLow))
				pure++
			}
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return domain.PriorityRank(recs[i].Priority) < domain.PriorityRank(recs[j].Priority)
	})
	return recs
}

func recommend(query, brand string, priority domain.Priority) domain.ContentRecommendation {
	archetype := ArchetypeFor(query)
	title, description, impact := describe(archetype, query, brand)
	return domain.ContentRecommendation{
		Archetype:      archetype,
		Title:          title,
		Description:    description,
		TargetQuery:    query,
		Priority:       priority,
		ExpectedImpact: impact,
	}
}
