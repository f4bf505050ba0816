package domain

type QueryIntent string

const (
	IntentInformational QueryIntent = "informational"
	IntentCommercial    QueryIntent = "commercial"
	IntentComparison    QueryIntent = "comparison"
)

type QueryPattern string

const (
	PatternBest       QueryPattern = "best"
	PatternVersus     QueryPattern = "versus"
	PatternForSegment QueryPattern = "for_segment"
	PatternHowTo      QueryPattern = "how_to"
	PatternWhatIs     QueryPattern = "what_is"
)

type BrandPosition string

const (
	PositionTop    BrandPosition = "top"
	PositionMiddle BrandPosition = "middle"
	PositionBottom BrandPosition = "bottom"
	PositionAbsent BrandPosition = "absent"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type AlertKind string

const (
	AlertVisibilityDrop     AlertKind = "visibility_drop"
	AlertCompetitorOvertake AlertKind = "competitor_overtake"
	AlertBrandDisappeared   AlertKind = "brand_disappeared"
	AlertVisibilityGain     AlertKind = "visibility_gain"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type ContentArchetype string

const (
	ArchetypeBlog           ContentArchetype = "blog"
	ArchetypeComparisonPage ContentArchetype = "comparison_page"
	ArchetypeFAQ            ContentArchetype = "faq"
	ArchetypeLandingPage    ContentArchetype = "landing_page"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank orders priorities for sorting (high first).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type Trend string

const (
	TrendImproved Trend = "improved"
	TrendDeclined Trend = "declined"
	TrendStable   Trend = "stable"
)

type RunMode string

const (
	ModeFull RunMode = "full"
	ModeDemo RunMode = "demo"
)
