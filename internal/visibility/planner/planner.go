package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/oracle"
	"github.com/sirupsen/logrus"
)

// MaxQueries caps the merged plan to bound downstream oracle cost.
const MaxQueries = 20

const augmentCount = 8

// Planner expands one analysis request into the set of queries to simulate.
type Planner struct {
	completer oracle.Completer
	log       *logrus.Logger
}

func New(completer oracle.Completer, log *logrus.Logger) *Planner {
	return &Planner{completer: completer, log: log}
}

// Plan returns the deterministic template queries plus a best-effort
// oracle-augmented tail, deduplicated and capped at MaxQueries. Template
// queries always take priority when capping since they are cost-free and
// guaranteed well-formed.
func (p *Planner) Plan(ctx context.Context, req domain.AnalysisRequest) []domain.PlannedQuery {
	queries := deterministicQueries(req)

	augmented := p.augment(ctx, req)

	seen := make(map[string]bool, len(queries)+len(augmented))
	merged := make([]domain.PlannedQuery, 0, len(queries)+len(augmented))
	for _, q := range append(queries, augmented...) {
		key := strings.ToLower(strings.TrimSpace(q.Text))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, q)
	}

	if len(merged) > MaxQueries {
		merged = merged[:MaxQueries]
	}
	return merged
}

type augmentedQueries struct {
	Queries []string `json:"queries"`
}

// augment asks the oracle for extra natural-language queries. Any failure
// here degrades to an empty list; it must never abort the plan.
func (p *Planner) augment(ctx context.Context, req domain.AnalysisRequest) []domain.PlannedQuery {
	if p.completer == nil {
		return nil
	}

	prompt := fmt.Sprintf(
		`Generate %d search queries a buyer in %s might ask an AI assistant when researching %s products. Respond as JSON: {"queries": ["..."]}`,
		augmentCount, req.Market, req.Industry,
	)
	raw, err := p.completer.Complete(ctx, oracle.Request{
		Prompt:       prompt,
		SystemPrompt: "You generate realistic buyer search queries. Respond with JSON only.",
		Temperature:  0.8,
		JSONMode:     true,
	})
	if err != nil {
		p.log.WithError(err).Warn("query augmentation skipped")
		return nil
	}

	var parsed augmentedQueries
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		p.log.WithError(err).Warn("query augmentation returned unexpected shape")
		return nil
	}

	out := make([]domain.PlannedQuery, 0, len(parsed.Queries))
	for _, text := range parsed.Queries {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, domain.PlannedQuery{
			Text:    text,
			Intent:  domain.IntentInformational,
			Pattern: domain.PatternWhatIs,
		})
	}
	return out
}
