// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"handoff/internal/modkit/httpkit"
	"handoff/internal/services/api/reports/domain"
	svc "handoff/internal/services/api/reports/service"
)

// Register mounts reports endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// archived scan runs, newest first
	httpkit.Get(r, "/runs", h.runs)

	// per-type dialog counts for a run
	httpkit.PostJSON[domain.StatsInput](r, "/stats", h.stats)

	// archived dialogs, optionally filtered by problem type
	httpkit.PostJSON[domain.ConversationsInput](r, "/conversations", h.conversations)
}

type handlers struct{ svc svc.Service }

func (h *handlers) runs(r *stdhttp.Request) (any, error) {
	return h.svc.Runs(r.Context())
}

func (h *handlers) stats(r *stdhttp.Request, in domain.StatsInput) (any, error) {
	return h.svc.Stats(r.Context(), in)
}

func (h *handlers) conversations(r *stdhttp.Request, in domain.ConversationsInput) (any, error) {
	return h.svc.Conversations(r.Context(), in)
}
