// Package detector implements trigger matching over folded message text
package detector

import (
	"sort"
	"strings"

	"handoff/internal/core/normalize"
	"handoff/internal/core/triggers"
)

// Detector runs trigger matching for every problem type in a pack.
// Safe for concurrent use
type Detector struct {
	p *triggers.Pack
}

// New creates a Detector over the given pack
func New(p *triggers.Pack) *Detector {
	return &Detector{p: p}
}

// Pack returns the pack the detector was built with
func (d *Detector) Pack() *triggers.Pack { return d.p }

// Scan folds text once and matches it against every problem type in pack
// order. Keys with no matches are absent from the result; a text with no
// matches at all yields a nil map
func (d *Detector) Scan(text string) map[string][]string {
	folded := normalize.Fold(text)
	if folded == "" {
		return nil
	}
	var out map[string][]string
	for i := range d.p.Types {
		pt := &d.p.Types[i]
		ms := d.matchType(folded, pt)
		if len(ms) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string][]string, 2)
		}
		out[pt.Key] = ms
	}
	return out
}

// FindMatches folds text and returns the deduplicated sorted triggers for a
// single problem type. Unknown keys yield nil
func (d *Detector) FindMatches(text, typeKey string) []string {
	pt := d.p.Get(typeKey)
	if pt == nil {
		return nil
	}
	folded := normalize.Fold(text)
	if folded == "" {
		return nil
	}
	return d.matchType(folded, pt)
}

// matchType collects every non-overlapping occurrence of the type's patterns
// and phrases in folded, then dedupes and sorts the matched substrings
func (d *Detector) matchType(folded string, pt *triggers.ProblemType) []string {
	var seen map[string]struct{}

	add := func(m string) {
		if m == "" {
			return
		}
		if seen == nil {
			seen = make(map[string]struct{}, 4)
		}
		seen[m] = struct{}{}
	}

	for _, re := range pt.Patterns {
		for _, m := range re.FindAllString(folded, -1) {
			add(m)
		}
	}
	for _, ph := range pt.Phrases {
		for _, pr := range phraseOccurrences(folded, ph) {
			add(folded[pr[0]:pr[1]])
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// phraseOccurrences returns the [start,end) spans of every non-overlapping
// occurrence of phrase in s that sits on word boundaries
func phraseOccurrences(s, phrase string) [][2]int {
	if phrase == "" {
		return nil
	}
	var spans [][2]int
	off := 0
	for {
		i := strings.Index(s[off:], phrase)
		if i < 0 {
			return spans
		}
		start := off + i
		end := start + len(phrase)
		if boundaryOK(s, start, end) {
			spans = append(spans, [2]int{start, end})
			off = end
			continue
		}
		// advance past this start so overlapping positions are still probed
		off = start + 1
	}
}
