package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	perr "handoff/internal/platform/errors"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListFindsNestedAndTopLevelChatFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dialog_1", "conv_AAA-1_chat.json"), `{}`)
	writeFile(t, filepath.Join(root, "dialog_1", "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "dialog_2", "conv_AAA-2_chat.json"), `{}`)
	writeFile(t, filepath.Join(root, "stray_chat.json"), `{}`)
	writeFile(t, filepath.Join(root, "readme.md"), "x")

	src := NewFSSource()
	refs, err := src.List(context.Background(), root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %v", refs)
	}

	// os.ReadDir sorts entries, so discovery order is stable
	if refs[0].Folder != "dialog_1" || refs[1].Folder != "dialog_2" {
		t.Fatalf("folders: %+v", refs)
	}
	// top level files fall back to their base name without extension
	if refs[2].Folder != "stray_chat" {
		t.Fatalf("top level folder fallback: %+v", refs[2])
	}
}

func TestListMissingRoot(t *testing.T) {
	src := NewFSSource()
	_, err := src.List(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestMessagesDecodesAndDefaults(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "conv_AAA-1_chat.json")
	writeFile(t, path, `{
		"messages": [
			{"user_id": "user_1", "text": "привет"},
			{"text": "без автора"},
			{"user_id": "bot_2"}
		]
	}`)

	src := NewFSSource()
	msgs, err := src.Messages(context.Background(), path)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Index != 0 || msgs[0].UserID != "user_1" || msgs[0].Text != "привет" {
		t.Fatalf("first message: %+v", msgs[0])
	}
	if msgs[1].UserID != "" || msgs[2].Text != "" {
		t.Fatalf("missing fields should default to empty: %+v %+v", msgs[1], msgs[2])
	}
}

func TestMessagesDecodeErrorCode(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "conv_AAA-1_chat.json")
	writeFile(t, path, `{not json`)

	src := NewFSSource()
	_, err := src.Messages(context.Background(), path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected json code, got %v", err)
	}
}

func TestMessagesEmptyPayload(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "conv_AAA-1_chat.json")
	writeFile(t, path, `{}`)

	src := NewFSSource()
	msgs, err := src.Messages(context.Background(), path)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %v", msgs)
	}
}
