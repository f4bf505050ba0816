package planner

import (
	"fmt"
	"strings"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// maxVersusCompetitors bounds versus-query expansion; only the first few
// competitors matter for head-to-head visibility.
const maxVersusCompetitors = 3

type template struct {
	format  string
	intent  domain.QueryIntent
	pattern domain.QueryPattern
}

// catalogue covers the five pattern buckets. Placeholders: %[1]s industry,
// %[2]s market.
var catalogue = []template{
	{"best %[1]s tools", domain.IntentCommercial, domain.PatternBest},
	{"best %[1]s software in %[2]s", domain.IntentCommercial, domain.PatternBest},
	{"top %[1]s platforms", domain.IntentCommercial, domain.PatternBest},
	{"what is the best %[1]s platform", domain.IntentInformational, domain.PatternWhatIs},
	{"what is %[1]s software used for", domain.IntentInformational, domain.PatternWhatIs},
	{"how to choose a %[1]s tool", domain.IntentInformational, domain.PatternHowTo},
	{"how to compare %[1]s vendors", domain.IntentInformational, domain.PatternHowTo},
	{"%[1]s software for startups", domain.IntentCommercial, domain.PatternForSegment},
	{"%[1]s tools for small business", domain.IntentCommercial, domain.PatternForSegment},
	{"%[1]s platform for enterprise", domain.IntentCommercial, domain.PatternForSegment},
}

// deterministicQueries instantiates the catalogue plus versus pairs for the
// first competitors, brand-first and competitor-first.
func deterministicQueries(req domain.AnalysisRequest) []domain.PlannedQuery {
	industry := strings.ToLower(strings.TrimSpace(req.Industry))
	if industry == "" {
		industry = "business"
	}
	market := req.Market

	out := make([]domain.PlannedQuery, 0, len(catalogue)+2*maxVersusCompetitors)
	for _, t := range catalogue {
		out = append(out, domain.PlannedQuery{
			Text:    fmt.Sprintf(t.format, industry, market),
			Intent:  t.intent,
			Pattern: t.pattern,
		})
	}

	n := len(req.Competitors)
	if n > maxVersusCompetitors {
		n = maxVersusCompetitors
	}
	for _, comp := range req.Competitors[:n] {
		out = append(out,
			domain.PlannedQuery{
				Text:    fmt.Sprintf("%s vs %s", req.Brand, comp),
				Intent:  domain.IntentComparison,
				Pattern: domain.PatternVersus,
			},
			domain.PlannedQuery{
				Text:    fmt.Sprintf("%s vs %s", comp, req.Brand),
				Intent:  domain.IntentComparison,
				Pattern: domain.PatternVersus,
			},
		)
	}
	return out
}
