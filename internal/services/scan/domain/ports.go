package domain

import "context"

// ConvRef points at one conversation file discovered under the input root.
// Folder is the dialog id fallback when the file name does not carry one
type ConvRef struct {
	Path   string
	Folder string
}

// SourcePort abstracts where conversation files come from
type SourcePort interface {
	// List returns conversation refs in deterministic discovery order
	List(ctx context.Context, root string) ([]ConvRef, error)

	// Messages decodes the chat file at path into ordered messages
	Messages(ctx context.Context, path string) ([]Message, error)
}

// ScannerPort is the external port for running a scan
type ScannerPort interface {
	Scan(ctx context.Context, root string) ([]*ConversationMatches, *ScanStats, error)
}
