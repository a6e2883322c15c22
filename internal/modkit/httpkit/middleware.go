package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"handoff/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for mounted modules.
// Compose extra middleware per module where a route needs it
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// panic safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// structured access logging
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
