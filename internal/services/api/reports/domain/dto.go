// Package domain holds DTOs for reports http and service contracts
package domain

// RunRow is one archived scan run
type RunRow struct {
	ID         string `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	InputRoot  string `json:"input_root" example:"output/conversations"`
	StartedAt  string `json:"started_at" example:"2026-08-01T10:00:00Z"`
	FinishedAt string `json:"finished_at" example:"2026-08-01T10:00:05Z"`

	TotalConversations   int `json:"total_conversations" example:"120"`
	MatchedConversations int `json:"matched_conversations" example:"17"`
}

// StatsInput selects the run to aggregate; empty run_id means the latest run
type StatsInput struct {
	RunID string `json:"run_id,omitempty" validate:"omitempty,uuid4" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
}

// StatsRow is the dialog count for one problem type
type StatsRow struct {
	Type     string `json:"type" example:"operator_request"`
	TypeName string `json:"type_name" example:"Запрос оператора"`
	Dialogs  int64  `json:"dialogs" example:"9"`
}

// ConversationsInput filters archived dialogs; empty run_id means the latest run
type ConversationsInput struct {
	RunID string `json:"run_id,omitempty" validate:"omitempty,uuid4" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Type  string `json:"type,omitempty" validate:"omitempty,min=1,max=64" example:"complaint"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// ConversationRow is one archived dialog with its matched type names
type ConversationRow struct {
	DialogID     string   `json:"dialog_id" example:"AAA-11314"`
	SourcePath   string   `json:"source_path" example:"output/conversations/dialog_42/conv_AAA-11314_chat.json"`
	MatchedTypes []string `json:"matched_types" example:"Жалоба,Возврат средств"`
	TriggerCount int      `json:"trigger_count" example:"4"`
}
