package oracle

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_Deterministic(t *testing.T) {
	demo := NewDemo("Acme", []string{"Rival", "Upstart"})

	first, err := demo.Complete(context.Background(), Request{Prompt: "best crm tools"})
	require.NoError(t, err)
	second, err := demo.Complete(context.Background(), Request{Prompt: "best crm tools"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestDemo_DifferentPromptsVary(t *testing.T) {
	demo := NewDemo("Acme", []string{"Rival"})

	seen := map[string]bool{}
	prompts := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, p := range prompts {
		out, err := demo.Complete(context.Background(), Request{Prompt: p})
		require.NoError(t, err)
		seen[out] = true
	}
	// the hash spreads prompts across placements, so answers differ
	assert.Greater(t, len(seen), 1)
}

func TestDemo_JSONModeQueryList(t *testing.T) {
	demo := NewDemo("Acme", nil)

	out, err := demo.Complete(context.Background(), Request{Prompt: "return queries as JSON", JSONMode: true})
	require.NoError(t, err)

	var parsed struct {
		Queries []string `json:"queries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.NotEmpty(t, parsed.Queries)
}

func TestDemo_JSONModeDraft(t *testing.T) {
	demo := NewDemo("Acme", nil)

	out, err := demo.Complete(context.Background(), Request{Prompt: "write an article", JSONMode: true})
	require.NoError(t, err)

	var parsed struct {
		Title   string `json:"title"`
		Excerpt string `json:"excerpt"`
		HTML    string `json:"html"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Contains(t, parsed.Title, "Acme")
	assert.NotEmpty(t, parsed.HTML)
}

func TestDemo_NoCompetitorsFallback(t *testing.T) {
	demo := NewDemo("Acme", nil)

	out, err := demo.Complete(context.Background(), Request{Prompt: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
