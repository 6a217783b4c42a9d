package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

var bonusTierPattern = regexp.MustCompile(`(\d+)\+(\d+)`)

// Bonus parses a product's bonus rule and returns the free units granted for
// the purchased quantity. Rules are comma-separated "buy+free" tiers; each
// tier the quantity reaches yields floor(quantity/buy)*free, and the best
// single tier wins. Tiers are never cumulative. "N/A", empty rules, and
// flat-rate offers grant nothing.
func Bonus(rule string, quantity int) int {
	rule = strings.TrimSpace(rule)
	if rule == "" || rule == "N/A" {
		return 0
	}
	if strings.Contains(rule, "Flat Rate") {
		return 0
	}
	best := 0
	for _, tier := range strings.Split(rule, ",") {
		m := bonusTierPattern.FindStringSubmatch(strings.TrimSpace(tier))
		if m == nil {
			continue
		}
		buy, err := strconv.Atoi(m[1])
		if err != nil || buy <= 0 {
			continue
		}
		free, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if quantity < buy {
			continue
		}
		if granted := quantity / buy * free; granted > best {
			best = granted
		}
	}
	return best
}
