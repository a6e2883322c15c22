// Package service renders scan results into report files
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"handoff/internal/core/triggers"
	perr "handoff/internal/platform/errors"
	"handoff/internal/platform/logger"
	"handoff/internal/services/report/domain"
	scandom "handoff/internal/services/scan/domain"
)

// Config for the report service
type Config struct {
	// OutputDir is the report root; conversations/ and INDEX.md go under it
	OutputDir string

	// Console receives the human summary; nil suppresses it
	Console io.Writer
}

// Service implements domain.WriterPort
type Service struct {
	Pack *triggers.Pack
	Cfg  Config
}

// New constructs a report service over a trigger pack
func New(pack *triggers.Pack, cfg Config) *Service {
	return &Service{Pack: pack, Cfg: cfg}
}

// BuildReport assembles the JSON payload for one matched conversation.
// Sections are ordered by type key; each section's triggers union the
// triggers of its messages, sorted
func (s *Service) BuildReport(m *scandom.ConversationMatches) domain.ConversationReport {
	keys := m.TypeKeys()
	sort.Strings(keys)

	types := make([]domain.TypeReport, 0, len(keys))
	for _, key := range keys {
		msgs := m.MatchedTypes[key]

		seen := make(map[string]struct{})
		var trigs []string
		for _, msg := range msgs {
			for _, tr := range msg.Triggers {
				if _, ok := seen[tr]; ok {
					continue
				}
				seen[tr] = struct{}{}
				trigs = append(trigs, tr)
			}
		}
		sort.Strings(trigs)

		types = append(types, domain.TypeReport{
			Type:     key,
			TypeName: s.Pack.TypeName(key),
			Triggers: trigs,
			Messages: msgs,
		})
	}

	uniq := m.FlatTriggers()
	if uniq == nil {
		uniq = []string{}
	}
	return domain.ConversationReport{
		DialogID:       m.DialogID,
		SourcePath:     m.SourcePath,
		MatchedTypes:   types,
		UniqueTriggers: uniq,
	}
}

// WriteAll writes one JSON report per conversation plus the INDEX.md
func (s *Service) WriteAll(ctx context.Context, matches []*scandom.ConversationMatches) error {
	convDir := filepath.Join(s.Cfg.OutputDir, "conversations")
	if err := os.MkdirAll(convDir, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "report: mkdir %q", convDir)
	}

	for _, m := range matches {
		rep := s.BuildReport(m)
		raw, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "report: encode dialog %q", m.DialogID)
		}
		path := filepath.Join(convDir, m.DialogID+".json")
		if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "report: write %q", path)
		}
	}

	idx := s.BuildIndex(matches)
	path := filepath.Join(s.Cfg.OutputDir, "INDEX.md")
	if err := os.WriteFile(path, []byte(idx), 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "report: write %q", path)
	}

	logger.C(ctx).Info().
		Int("conversations", len(matches)).
		Str("dir", s.Cfg.OutputDir).
		Msg("reports written")
	return nil
}

// BuildIndex renders the INDEX.md body.
// Per-type sections follow the pack's declared type order; dialog listings
// are sorted by dialog id
func (s *Service) BuildIndex(matches []*scandom.ConversationMatches) string {
	byType := make(map[string][]string)
	for _, m := range matches {
		for _, key := range m.TypeKeys() {
			byType[key] = append(byType[key], m.DialogID)
		}
	}

	var b strings.Builder
	b.WriteString("# Индекс проблемных диалогов\n\n")
	b.WriteString("## Количество по типам\n\n")
	for _, key := range s.Pack.Keys() {
		ids := byType[key]
		sort.Strings(ids)
		fmt.Fprintf(&b, "### %s\n", s.Pack.TypeName(key))
		fmt.Fprintf(&b, "- Найдено диалогов: %d\n", len(ids))
		if len(ids) > 0 {
			sample := ids
			if len(sample) > 10 {
				sample = sample[:10]
			}
			fmt.Fprintf(&b, "- Примеры: %s\n", strings.Join(sample, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Все сохраненные диалоги\n\n")
	sorted := make([]*scandom.ConversationMatches, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DialogID < sorted[j].DialogID })
	for _, m := range sorted {
		keys := m.TypeKeys()
		sort.Strings(keys)
		names := make([]string, len(keys))
		for i, key := range keys {
			names[i] = s.Pack.TypeName(key)
		}
		fmt.Fprintf(&b, "- %s: %s\n", m.DialogID, strings.Join(names, ", "))
	}
	return b.String()
}

// Summarize logs the per-type match counts and, when a console writer is
// configured, prints the human summary
func (s *Service) Summarize(ctx context.Context, matches []*scandom.ConversationMatches, stats *scandom.ScanStats) {
	ev := logger.C(ctx).Info().
		Int("total", stats.TotalConversations).
		Int("matched", stats.MatchedConversations)
	for _, key := range s.Pack.Keys() {
		ev = ev.Int(key, stats.PerType[key])
	}
	ev.Msg("scan summary")

	if s.Cfg.Console == nil {
		return
	}
	fmt.Fprintf(s.Cfg.Console, "Найдено проблемных диалогов: %d\n", len(matches))
	for _, key := range s.Pack.Keys() {
		fmt.Fprintf(s.Cfg.Console, "- %s: %d\n", s.Pack.TypeName(key), stats.PerType[key])
	}
}
