package domain

import "time"

// RunLevelQuery is the sentinel query value on alerts that concern the
// whole run rather than a single query.
const RunLevelQuery = "(overall)"

// AnalysisRequest is the immutable input to one analysis run.
type AnalysisRequest struct {
	Brand       string   `json:"brand"`
	Industry    string   `json:"industry"`
	Competitors []string `json:"competitors"`
	Market      string   `json:"market"`
	Domain      string   `json:"domain,omitempty"`
}

// PlannedQuery is one search query the pipeline will simulate.
type PlannedQuery struct {
	Text    string       `json:"text"`
	Intent  QueryIntent  `json:"intent"`
	Pattern QueryPattern `json:"pattern"`
}

// SimulationOutcome is the analyzed result of one simulated engine answer.
type SimulationOutcome struct {
	Query            string        `json:"query"`
	Response         string        `json:"response"`
	BrandFound       bool          `json:"brand_found"`
	BrandPosition    BrandPosition `json:"brand_position"`
	CompetitorsFound []string      `json:"competitors_found"`
	Sentiment        Sentiment     `json:"sentiment"`
	Timestamp        time.Time     `json:"timestamp"`
}

// ScoreBreakdown itemizes how a visibility score was assembled.
type ScoreBreakdown struct {
	BrandMentions     int `json:"brand_mentions"`
	TopPositions      int `json:"top_positions"`
	MiddlePositions   int `json:"middle_positions"`
	CompetitorPenalty int `json:"competitor_penalty"`
	SentimentPenalty  int `json:"sentiment_penalty"`
}

// VisibilityScore is the 0-100 aggregate for one run.
type VisibilityScore struct {
	Raw         int            `json:"raw"`
	MaxPossible int            `json:"max_possible"`
	Percentage  int            `json:"percentage"`
	Explanation string         `json:"explanation"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// StateSnapshot captures brand state on one query at one point in time.
// Score is 1 when the brand was present, 0 otherwise.
type StateSnapshot struct {
	Position BrandPosition `json:"position"`
	Score    int           `json:"score"`
}

// Alert is a drift signal derived from two consecutive runs. Alerts are
// recomputed each run and never stored independently.
type Alert struct {
	Kind      AlertKind     `json:"kind"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Query     string        `json:"query"`
	Previous  StateSnapshot `json:"previous"`
	Current   StateSnapshot `json:"current"`
	Timestamp time.Time     `json:"timestamp"`
}

// ContentRecommendation targets one weak query with a content play.
type ContentRecommendation struct {
	Archetype      ContentArchetype `json:"archetype"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	TargetQuery    string           `json:"target_query"`
	Priority       Priority         `json:"priority"`
	ExpectedImpact string           `json:"expected_impact"`
}

// GeneratedContent is synthesized content for one recommendation.
type GeneratedContent struct {
	Recommendation ContentRecommendation `json:"recommendation"`
	Title          string                `json:"title"`
	Excerpt        string                `json:"excerpt"`
	HTML           string                `json:"html"`
	Slug           string                `json:"slug"`
}

// PublishedContent records a successful push to the publishing sink.
type PublishedContent struct {
	Title  string `json:"title"`
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
}

// AnalysisRun is the stored aggregate for one complete pipeline execution.
// Outcomes are index-aligned with Queries.
type AnalysisRun struct {
	RunID           string                  `json:"run_id"`
	Request         AnalysisRequest         `json:"request"`
	Queries         []PlannedQuery          `json:"queries"`
	Outcomes        []SimulationOutcome     `json:"outcomes"`
	Score           VisibilityScore         `json:"score"`
	Alerts          []Alert                 `json:"alerts"`
	Recommendations []ContentRecommendation `json:"recommendations"`
	CreatedAt       time.Time               `json:"created_at"`
}

// RunSummary is the reduced history projection.
type RunSummary struct {
	RunID                string    `json:"run_id"`
	Timestamp            time.Time `json:"timestamp"`
	VisibilityPercentage int       `json:"visibility_percentage"`
	QueryCount           int       `json:"query_count"`
	AlertCount           int       `json:"alert_count"`
}

// Summary reduces a run to its RunSummary projection.
func (r *AnalysisRun) Summary() RunSummary {
	return RunSummary{
		RunID:                r.RunID,
		Timestamp:            r.CreatedAt,
		VisibilityPercentage: r.Score.Percentage,
		QueryCount:           len(r.Queries),
		AlertCount:           len(r.Alerts),
	}
}

// RunComparison relates the current run to the previous one for the brand.
type RunComparison struct {
	PreviousRunID      string    `json:"previous_run_id"`
	PreviousPercentage int       `json:"previous_percentage"`
	CurrentPercentage  int       `json:"current_percentage"`
	Delta              int       `json:"delta"`
	Trend              Trend     `json:"trend"`
	PreviousAt         time.Time `json:"previous_at"`
}

// PublishCredentials authenticates against the publishing sink.
type PublishCredentials struct {
	SiteURL  string `json:"site_url"`
	Username string `json:"username"`
	AppToken string `json:"app_token"`
}

// Complete reports whether every field needed for a publish call is set.
func (c PublishCredentials) Complete() bool {
	return c.SiteURL != "" && c.Username != "" && c.AppToken != ""
}

// RunOptions controls optional stages of one orchestration call.
type RunOptions struct {
	Mode            RunMode             `json:"mode"`
	GenerateContent bool                `json:"generate_content"`
	AutoPublish     bool                `json:"auto_publish"`
	Credentials     *PublishCredentials `json:"publish_credentials,omitempty"`
}
