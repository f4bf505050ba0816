package gaps

import (
	"strings"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// ArchetypeFor picks the content archetype for a target query by
// case-insensitive pattern matching. Falls back to a blog post.
func ArchetypeFor(query string) domain.ContentArchetype {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "vs", " versus ", "compare"):
		return domain.ArchetypeComparisonPage
	case containsAny(q, "best", "top"):
		return domain.ArchetypeBlog
	case containsAny(q, "how to", "what is", "guide"):
		return domain.ArchetypeFAQ
	case containsAny(q, "for startups", "for small", "for enterprise"):
		return domain.ArchetypeLandingPage
	default:
		return domain.ArchetypeBlog
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func describe(a domain.ContentArchetype, query, brand string) (title, description, impact string) {
	switch a {
	case domain.ArchetypeComparisonPage:
		return "Comparison: " + query,
			"A head-to-head comparison page targeting \"" + query + "\" with an honest feature and pricing breakdown.",
			"Comparison pages are cited heavily by AI answers for versus-style questions."
	case domain.ArchetypeFAQ:
		return "FAQ: " + query,
			"A question-led FAQ article answering \"" + query + "\" directly, with " + brand + " positioned in the answer.",
			"Direct question-answer formats are preferred sources for AI-generated explanations."
	case domain.ArchetypeLandingPage:
		return "Landing page: " + query,
			"A segment landing page for \"" + query + "\" speaking to that audience's specific needs.",
			"Segment pages give AI engines a concrete citation when buyers qualify by company size."
	default:
		return "Article: " + query,
			"An in-depth listicle or guide targeting \"" + query + "\" that features " + brand + " prominently.",
			"Ranked list content is the most common source for best-of AI answers."
	}
}
