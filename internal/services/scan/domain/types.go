// Package domain defines scan types and ports
package domain

// Message is one chat turn decoded from a conversation file
type Message struct {
	Index  int
	UserID string
	Text   string
}

// MatchedMessage records one message that fired triggers for a problem type.
// Triggers are lowercased, deduplicated, and sorted
type MatchedMessage struct {
	Index    int      `json:"index"`
	UserID   string   `json:"user_id"`
	Text     string   `json:"text"`
	Triggers []string `json:"triggers"`
}

// ConversationMatches aggregates matches for a single dialog.
// MatchedTypes groups matched messages by problem type key; typeOrder keeps
// the first-seen insertion order for deterministic trigger flattening
type ConversationMatches struct {
	DialogID   string
	SourcePath string

	MatchedTypes map[string][]MatchedMessage

	typeOrder []string
}

// NewConversationMatches constructs an empty result for a dialog
func NewConversationMatches(dialogID, sourcePath string) *ConversationMatches {
	return &ConversationMatches{
		DialogID:     dialogID,
		SourcePath:   sourcePath,
		MatchedTypes: make(map[string][]MatchedMessage),
	}
}

// AddMatch appends a matched message under the given problem type key
func (c *ConversationMatches) AddMatch(typeKey string, m MatchedMessage) {
	if _, ok := c.MatchedTypes[typeKey]; !ok {
		c.typeOrder = append(c.typeOrder, typeKey)
	}
	c.MatchedTypes[typeKey] = append(c.MatchedTypes[typeKey], m)
}

// TypeKeys returns the matched problem type keys in first-seen order
func (c *ConversationMatches) TypeKeys() []string {
	out := make([]string, len(c.typeOrder))
	copy(out, c.typeOrder)
	return out
}

// FlatTriggers returns every distinct trigger across all matched messages,
// preserving first-seen order
func (c *ConversationMatches) FlatTriggers() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, key := range c.typeOrder {
		for _, m := range c.MatchedTypes[key] {
			for _, tr := range m.Triggers {
				if _, ok := seen[tr]; ok {
					continue
				}
				seen[tr] = struct{}{}
				out = append(out, tr)
			}
		}
	}
	return out
}

// ScanStats aggregates counters across a scan run
type ScanStats struct {
	TotalConversations   int
	MatchedConversations int
	PerType              map[string]int
}

// RegisterConversation counts one decoded conversation; matched holds the
// problem type keys it fired, empty for a clean conversation
func (s *ScanStats) RegisterConversation(matched []string) {
	s.TotalConversations++
	if len(matched) > 0 {
		s.MatchedConversations++
	}
	for _, key := range matched {
		if s.PerType == nil {
			s.PerType = make(map[string]int)
		}
		s.PerType[key]++
	}
}
