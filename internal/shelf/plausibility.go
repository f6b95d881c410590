package shelf

import (
	"fmt"
	"strings"
)

// Plausibility decides whether a candidate name looks like an organizational
// shelf or like artist/album text. It is a heuristic: false positives and
// negatives are expected, the goal is to avoid minting garbage shelves from
// unusual release titles.
type Plausibility struct {
	// Defaults are always accepted (the built-in and workflow shelf names).
	Defaults []string
	// Known reports whether the name is already in the known-shelf registry.
	// A known name is never rejected. May be nil.
	Known func(name string) bool
}

// Check reports whether name is a plausible shelf name. When it is not, the
// second return value lists every triggered heuristic, joined with "; ".
func (p Plausibility) Check(name string) (bool, string) {
	if name == "" {
		return false, "empty name"
	}

	for _, def := range p.Defaults {
		if name == def {
			return true, ""
		}
	}
	if p.Known != nil && p.Known(name) {
		return true, ""
	}

	var reasons []string

	if strings.Contains(name, " - ") {
		reasons = append(reasons, "contains ' - ' (typical for 'Artist - Album' format)")
	}
	if len(name) > MaxNameLength {
		reasons = append(reasons, fmt.Sprintf("too long (%d chars)", len(name)))
	}
	if words := len(strings.Fields(name)); words > MaxWordCount {
		reasons = append(reasons, fmt.Sprintf("too many words (%d)", words))
	}
	for _, indicator := range albumIndicators {
		if strings.Contains(name, indicator) {
			reasons = append(reasons, "contains album indicator (Vol., Disc, etc.)")
			break
		}
	}

	if len(reasons) > 0 {
		return false, strings.Join(reasons, "; ")
	}
	return true, ""
}
