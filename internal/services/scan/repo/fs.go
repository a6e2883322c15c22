// Package repo implements the filesystem conversation source
package repo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	perr "handoff/internal/platform/errors"

	"handoff/internal/core/triggers"
	"handoff/internal/services/scan/domain"
)

// FSSource reads conversation chat files from a directory tree.
// Layout: <root>/<dialog folder>/conv_<ID>_chat.json, with stray chat files
// directly under root also picked up
type FSSource struct{}

// NewFSSource constructs a filesystem source
func NewFSSource() *FSSource { return &FSSource{} }

var _ domain.SourcePort = (*FSSource)(nil)

// List walks one level of root and returns chat files in lexical order
func (s *FSSource) List(ctx context.Context, root string) ([]domain.ConvRef, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "scan: read input dir %s", root)
	}

	var refs []domain.ConvRef
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			nested, err := os.ReadDir(filepath.Join(root, e.Name()))
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "scan: read dialog dir %s", e.Name())
			}
			for _, n := range nested {
				if n.IsDir() || !strings.HasSuffix(n.Name(), triggers.ChatFileSuffix) {
					continue
				}
				refs = append(refs, domain.ConvRef{
					Path:   filepath.Join(root, e.Name(), n.Name()),
					Folder: e.Name(),
				})
			}
			continue
		}
		if strings.HasSuffix(e.Name(), triggers.ChatFileSuffix) {
			refs = append(refs, domain.ConvRef{
				Path:   filepath.Join(root, e.Name()),
				Folder: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			})
		}
	}
	return refs, nil
}

// chatPayload is the on-disk chat file shape; absent fields default to zero
type chatPayload struct {
	Messages []struct {
		UserID string `json:"user_id"`
		Text   string `json:"text"`
	} `json:"messages"`
}

// Messages decodes one chat file; message index follows file order
func (s *FSSource) Messages(_ context.Context, path string) ([]domain.Message, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "scan: read %s", path)
	}
	var payload chatPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "scan: decode %s", path)
	}

	out := make([]domain.Message, 0, len(payload.Messages))
	for i, m := range payload.Messages {
		out = append(out, domain.Message{Index: i, UserID: m.UserID, Text: m.Text})
	}
	return out, nil
}
