package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// Demo is a deterministic, network-free completer used for demo-mode runs
// and tests. Answers embed the brand and competitors it was built with;
// brand placement and tone are derived from a hash of the prompt so the
// same request always produces the same run.
type Demo struct {
	Brand       string
	Competitors []string
}

func NewDemo(brand string, competitors []string) *Demo {
	return &Demo{Brand: brand, Competitors: competitors}
}

func (d *Demo) Complete(_ context.Context, req Request) (string, error) {
	if req.JSONMode {
		return d.completeJSON(req)
	}
	return d.completeAnswer(req.Prompt), nil
}

func (d *Demo) completeJSON(req Request) (string, error) {
	if strings.Contains(strings.ToLower(req.Prompt), "queries") {
		out := map[string][]string{"queries": {
			"which tools do experts recommend for " + strings.ToLower(d.Brand) + " alternatives",
			"most recommended platforms in this space",
		}}
		b, _ := json.Marshal(out)
		return string(b), nil
	}
	out := map[string]string{
		"title":   "How " + d.Brand + " stacks up",
		"excerpt": "A practical look at " + d.Brand + " and its closest alternatives.",
		"html":    "<h2>Overview</h2><p>" + d.Brand + " is a solid choice for most teams.</p>",
	}
	b, _ := json.Marshal(out)
	return string(b), nil
}

func (d *Demo) completeAnswer(prompt string) string {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	v := h.Sum32()

	competitors := strings.Join(d.Competitors, ", ")
	if competitors == "" {
		competitors = "several established vendors"
	}

	filler := "There are many options to consider in this market and each has trade-offs worth weighing before committing. "

	switch v % 4 {
	case 0: // top mention, positive
		return fmt.Sprintf("%s is the leading choice here, trusted by many teams. %sOther contenders include %s.",
			d.Brand, strings.Repeat(filler, 3), competitors)
	case 1: // middle mention, neutral
		return fmt.Sprintf("%sAmong the options, %s is worth a look alongside %s. %s",
			strings.Repeat(filler, 2), d.Brand, competitors, strings.Repeat(filler, 2))
	case 2: // bottom mention, negative
		return fmt.Sprintf("%sThe strongest picks are %s. Some also mention %s, though it lacks a few advanced features and can feel limited.",
			strings.Repeat(filler, 4), competitors, d.Brand)
	default: // absent
		return fmt.Sprintf("The most commonly recommended options are %s. %s", competitors, strings.Repeat(filler, 3))
	}
}
