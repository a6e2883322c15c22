// Package service implements the conversation scanner
package service

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"handoff/internal/core/detector"
	"handoff/internal/core/triggers"
	"handoff/internal/platform/logger"
	"handoff/internal/services/scan/domain"
)

// Config for the scan service
type Config struct {
	// Workers bounds concurrent conversation analysis; <=0 means 1
	Workers int
}

// Option tweaks service construction
type Option func(*Service)

// WithUserPredicate overrides which message authors are analyzed.
// The default keeps authors whose id carries the user_ prefix
func WithUserPredicate(fn func(userID string) bool) Option {
	return func(s *Service) {
		if fn != nil {
			s.isUser = fn
		}
	}
}

// Service implements domain.ScannerPort
type Service struct {
	Source domain.SourcePort
	Det    *detector.Detector
	Cfg    Config

	isUser func(string) bool
}

// New constructs a scan service over a source and a trigger pack
func New(src domain.SourcePort, pack *triggers.Pack, cfg Config, opts ...Option) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	s := &Service{
		Source: src,
		Det:    detector.New(pack),
		Cfg:    cfg,
		isUser: func(id string) bool { return strings.HasPrefix(id, "user_") },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AnalyzeMessages runs trigger matching over customer messages only.
// Each (message, problem type) pairing yields one MatchedMessage; bot and
// operator turns never contribute matches. The returned key list holds the
// matched problem types in the order their first match was discovered
func (s *Service) AnalyzeMessages(msgs []domain.Message) (map[string][]domain.MatchedMessage, []string) {
	var matched map[string][]domain.MatchedMessage
	var order []string
	for _, m := range msgs {
		if !s.isUser(m.UserID) {
			continue
		}
		for _, key := range s.Det.Pack().Keys() {
			hits := s.Det.FindMatches(m.Text, key)
			if len(hits) == 0 {
				continue
			}
			if matched == nil {
				matched = make(map[string][]domain.MatchedMessage)
			}
			if _, ok := matched[key]; !ok {
				order = append(order, key)
			}
			matched[key] = append(matched[key], domain.MatchedMessage{
				Index:    m.Index,
				UserID:   m.UserID,
				Text:     m.Text,
				Triggers: hits,
			})
		}
	}
	return matched, order
}

// AnalyzeConversation decodes one chat file and returns its matches.
// A clean conversation yields (nil, nil); a decode failure yields the error
func (s *Service) AnalyzeConversation(ctx context.Context, ref domain.ConvRef) (*domain.ConversationMatches, error) {
	msgs, err := s.Source.Messages(ctx, ref.Path)
	if err != nil {
		return nil, err
	}

	matched, order := s.AnalyzeMessages(msgs)
	if len(matched) == 0 {
		return nil, nil
	}

	dialogID := triggers.DialogID(filepath.Base(ref.Path), ref.Folder)
	res := domain.NewConversationMatches(dialogID, ref.Path)
	for _, key := range order {
		for _, m := range matched[key] {
			res.AddMatch(key, m)
		}
	}
	return res, nil
}

// Scan analyzes every conversation under root.
// Workers fan out per conversation; results and stats keep discovery order
// so repeated runs over the same tree are byte-identical downstream
func (s *Service) Scan(ctx context.Context, root string) ([]*domain.ConversationMatches, *domain.ScanStats, error) {
	refs, err := s.Source.List(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	type outcome struct {
		res *domain.ConversationMatches
		err error
	}
	out := make([]outcome, len(refs))

	sem := make(chan struct{}, s.Cfg.Workers)
	var wg sync.WaitGroup
	for i := range refs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			res, err := s.AnalyzeConversation(ctx, refs[i])
			out[i] = outcome{res: res, err: err}
		}(i)
	}
	wg.Wait()

	log := logger.C(ctx)
	stats := &domain.ScanStats{}
	var matches []*domain.ConversationMatches
	for i, o := range out {
		if o.err != nil {
			// unreadable files are reported but do not poison the run
			log.Warn().Err(o.err).Str("path", refs[i].Path).Msg("conversation skipped")
			continue
		}
		if o.res != nil {
			matches = append(matches, o.res)
			stats.RegisterConversation(o.res.TypeKeys())
			continue
		}
		stats.RegisterConversation(nil)
	}
	return matches, stats, nil
}
