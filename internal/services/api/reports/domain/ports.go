package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Runs(ctx context.Context) ([]RunRow, error)
	Stats(ctx context.Context, in StatsInput) ([]StatsRow, error)
	Conversations(ctx context.Context, in ConversationsInput) ([]ConversationRow, error)
}
