package drift

import "sort"

var registered = map[string]Rule{}

func Register(r Rule) {
	if r == nil {
		return
	}
	registered[r.Name()] = r
}

// All returns the registered rules in evaluation order.
func All() []Rule {
	out := make([]Rule, 0, len(registered))
	for _, r := range registered {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}
