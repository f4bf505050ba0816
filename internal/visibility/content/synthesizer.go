package content

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/oracle"
)

// Synthesizer expands a content recommendation into a full draft via the
// oracle. It sits outside the alerting core's critical path; callers omit
// failed items instead of failing the run.
type Synthesizer struct {
	completer oracle.Completer
}

func NewSynthesizer(completer oracle.Completer) *Synthesizer {
	return &Synthesizer{completer: completer}
}

type draft struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	HTML    string `json:"html"`
}

// Synthesize generates one article draft for a recommendation.
func (s *Synthesizer) Synthesize(ctx context.Context, rec domain.ContentRecommendation, req domain.AnalysisRequest) (*domain.GeneratedContent, error) {
	prompt := fmt.Sprintf(
		`Write a %s targeting the search query %q for the brand %s (%s industry). Mention %s naturally and cover the alternatives fairly. Respond as JSON: {"title": "...", "excerpt": "...", "html": "..."} where html is the full article body in HTML.`,
		string(rec.Archetype), rec.TargetQuery, req.Brand, req.Industry, req.Brand,
	)

	raw, err := s.completer.Complete(ctx, oracle.Request{
		Prompt:       prompt,
		SystemPrompt: "You are a senior content marketer. Respond with JSON only.",
		Temperature:  0.7,
		JSONMode:     true,
	})
	if err != nil {
		return nil, err
	}

	var d draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, &domain.SchemaError{Op: "synthesize", Err: err}
	}
	if d.Title == "" || d.HTML == "" {
		return nil, &domain.SchemaError{Op: "synthesize", Err: fmt.Errorf("draft missing title or body")}
	}

	return &domain.GeneratedContent{
		Recommendation: rec,
		Title:          d.Title,
		Excerpt:        d.Excerpt,
		HTML:           d.HTML,
		Slug:           Slugify(d.Title),
	}, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL slug.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
