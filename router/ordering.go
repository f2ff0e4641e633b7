package router

import (
	"fmt"
	"sort"
	"strings"
)

// orderingStrategy names one deterministic net-routing order. Order lists every net name in the sequence
// it should be routed.
type orderingStrategy struct {
	Label string
	Order []string
}

// orderingStrategies enumerates the ordering-strategy set:
// forward/reverse of the natural (priority) signal order, alphabetical
// forward/reverse, every cyclic rotation of the signal list, and power-net
// placements relative to signals. Duplicates (by concatenated key) are
// dropped, preserving first-occurrence order.
func orderingStrategies(signalNames []string, powerNames []string) []orderingStrategy {
	var candidates []orderingStrategy
	add := func(label string, signals, power []string) {
		order := make([]string, 0, len(signals)+len(power))
		order = append(order, signals...)
		order = append(order, power...)
		candidates = append(candidates, orderingStrategy{Label: label, Order: order})
	}

	reversed := func(s []string) []string {
		out := make([]string, len(s))
		for i, v := range s {
			out[len(s)-1-i] = v
		}
		return out
	}
	rotate := func(s []string, k int) []string {
		n := len(s)
		if n == 0 {
			return nil
		}
		out := make([]string, n)
		for i := 0; i < n; i++ {
			out[i] = s[(i+k)%n]
		}
		return out
	}
	alphabetical := func(s []string) []string {
		out := append([]string(nil), s...)
		sort.Strings(out)
		return out
	}

	add("forward", signalNames, powerNames)
	add("reverse", reversed(signalNames), powerNames)

	alpha := alphabetical(signalNames)
	add("alphabetical-forward", alpha, powerNames)
	add("alphabetical-reverse", reversed(alpha), powerNames)

	for k := 1; k < len(signalNames); k++ {
		add(fmt.Sprintf("rotation-%d", k), rotate(signalNames, k), powerNames)
	}

	if len(powerNames) == 2 {
		swapped := []string{powerNames[1], powerNames[0]}
		add("forward-power-swapped", signalNames, swapped)
		add("reverse-power-swapped", reversed(signalNames), swapped)
	}

	return dedupeStrategies(candidates)
}

// dedupeStrategies drops strategies whose net order exactly repeats an
// earlier one, keeping the first occurrence's label.
func dedupeStrategies(in []orderingStrategy) []orderingStrategy {
	seen := make(map[string]bool, len(in))
	out := make([]orderingStrategy, 0, len(in))
	for _, s := range in {
		key := strings.Join(s.Order, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
