// Package triggers loads and compiles the problem type pack from the embedded
// rules.json. It is the single source of problem categories, their trigger
// patterns, and the naming conventions of conversation files
package triggers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"handoff/internal/core/normalize"
)

//go:embed rules.json
var embedded []byte

type rawType struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Patterns []string `json:"patterns,omitempty"`
	Phrases  []string `json:"phrases,omitempty"`
}

type rawPack struct {
	Version int            `json:"version"`
	Meta    map[string]any `json:"meta"`
	Types   []rawType      `json:"types"`
}

// ProblemType is one category of incident signal. Patterns are compiled
// regexes; Phrases are folded literal substrings matched on word boundaries.
// Instances are immutable after Load and shared read-only across a scan
type ProblemType struct {
	Key      string
	Name     string
	Patterns []*regexp.Regexp
	Phrases  []string
}

// Pack is the compiled problem type registry. Types preserves rules.json
// order, which governs iteration and reporting order everywhere
type Pack struct {
	Version int
	Meta    map[string]any
	Types   []ProblemType

	byKey map[string]*ProblemType
}

// ConvFilePattern extracts the dialog id from a conversation file name,
// e.g. conv_AAA-11314_chat.json -> AAA-11314
var ConvFilePattern = regexp.MustCompile(`conv_([A-Z]+-\d+)_`)

// ChatFileSuffix marks conversation chat files on disk
const ChatFileSuffix = "_chat.json"

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("triggers: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("triggers: unsupported rules.json version %d (want 1)", rp.Version)
	}
	if len(rp.Types) == 0 {
		return nil, fmt.Errorf("triggers: rules.json has no types")
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		Types:   make([]ProblemType, 0, len(rp.Types)),
		byKey:   make(map[string]*ProblemType, len(rp.Types)),
	}

	seen := make(map[string]struct{}, len(rp.Types))
	for _, rt := range rp.Types {
		key := strings.TrimSpace(rt.Key)
		if key == "" {
			return nil, fmt.Errorf("triggers: type with empty key")
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("triggers: duplicate type key %q", key)
		}
		seen[key] = struct{}{}
		if len(rt.Patterns) == 0 && len(rt.Phrases) == 0 {
			return nil, fmt.Errorf("triggers: type %q has no patterns", key)
		}

		pt := ProblemType{Key: key, Name: strings.TrimSpace(rt.Name)}

		for _, src := range rt.Patterns {
			re, err := regexp.Compile(expandWordClass(strings.ToLower(src)))
			if err != nil {
				return nil, fmt.Errorf("triggers: compile %q for %q: %w", src, key, err)
			}
			pt.Patterns = append(pt.Patterns, re)
		}
		for _, ph := range rt.Phrases {
			folded := normalize.Fold(ph)
			if folded == "" {
				continue
			}
			pt.Phrases = append(pt.Phrases, folded)
		}

		p.Types = append(p.Types, pt)
	}

	for i := range p.Types {
		p.byKey[p.Types[i].Key] = &p.Types[i]
	}
	return p, nil
}

// Must loads the embedded pack or panics; the pack is static data, so a
// failure here is a build defect, not a runtime condition
func Must() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Keys returns type keys in registry order
func (p *Pack) Keys() []string {
	out := make([]string, len(p.Types))
	for i := range p.Types {
		out[i] = p.Types[i].Key
	}
	return out
}

// Get returns the problem type for key, or nil when unknown
func (p *Pack) Get(key string) *ProblemType { return p.byKey[key] }

// TypeName returns the display name for key, or the key itself when unknown
func (p *Pack) TypeName(key string) string {
	if pt := p.byKey[key]; pt != nil {
		return pt.Name
	}
	return key
}

// DialogID derives the stable dialog id from a conversation file name,
// falling back to the containing folder name when the name does not follow
// the conv_<ID>_ convention
func DialogID(filename, fallback string) string {
	if m := ConvFilePattern.FindStringSubmatch(filename); len(m) > 1 {
		return m[1]
	}
	return fallback
}

// expandWordClass rewrites \w into a Unicode-aware class so patterns authored
// the natural way ("оператор\w*") keep matching Cyrillic word runs; Go's
// regexp \w is ASCII-only
func expandWordClass(pattern string) string {
	return strings.ReplaceAll(pattern, `\w`, `[\p{L}\p{N}_]`)
}
