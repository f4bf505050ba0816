package simulator

import (
	"strings"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// sentimentWindow is how many characters around the first brand mention
// are scanned for tone keywords.
const sentimentWindow = 150

var nameSuffixes = []string{" inc", " llc", " ltd", " corp", " co", " software", " app", ".com", ".io", ".ai"}

var positiveWords = []string{
	"best", "leading", "top", "excellent", "popular", "powerful",
	"trusted", "great", "reliable", "recommended", "innovative",
}

var negativeWords = []string{
	"worse", "expensive", "difficult", "complicated", "lacks",
	"limited", "poor", "outdated", "slow", "weak", "clunky",
}

// nameVariants returns the normalized forms a brand or competitor may
// appear under: the raw name, the name with common suffixes stripped, and
// the whitespace-collapsed form. All lowercase.
func nameVariants(name string) []string {
	base := strings.ToLower(strings.TrimSpace(name))
	if base == "" {
		return nil
	}

	variants := []string{base}

	stripped := base
	for _, suffix := range nameSuffixes {
		stripped = strings.TrimSuffix(stripped, suffix)
	}
	stripped = strings.TrimSpace(stripped)
	if stripped != "" && stripped != base {
		variants = append(variants, stripped)
	}

	collapsed := strings.Join(strings.Fields(base), "")
	if collapsed != base {
		variants = append(variants, collapsed)
	}
	return variants
}

// firstMention returns the byte offset of the earliest occurrence of any
// variant of name in text, or -1 when the name does not appear. Matching
// is case-insensitive substring matching.
func firstMention(text, name string) int {
	lower := strings.ToLower(text)
	first := -1
	for _, v := range nameVariants(name) {
		if idx := strings.Index(lower, v); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first
}

// positionFor maps the relative offset of the first mention to a position
// band: first third top, middle third middle, final third bottom.
func positionFor(offset, totalLen int) domain.BrandPosition {
	if offset < 0 || totalLen == 0 {
		return domain.PositionAbsent
	}
	switch {
	case offset*3 < totalLen:
		return domain.PositionTop
	case offset*3 < 2*totalLen:
		return domain.PositionMiddle
	default:
		return domain.PositionBottom
	}
}

// sentimentAround scans a fixed window around the first brand mention and
// compares positive versus negative keyword hits. Ties and the no-mention
// case are neutral.
func sentimentAround(text string, offset int) domain.Sentiment {
	if offset < 0 {
		return domain.SentimentNeutral
	}

	start := offset - sentimentWindow
	if start < 0 {
		start = 0
	}
	end := offset + sentimentWindow
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])

	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(window, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(window, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// competitorsIn returns the competitors mentioned in text, preserving the
// order of the input list.
func competitorsIn(text string, competitors []string) []string {
	found := make([]string, 0, len(competitors))
	for _, comp := range competitors {
		if firstMention(text, comp) >= 0 {
			found = append(found, comp)
		}
	}
	return found
}
