// Package httpkit gives modules routing and handler sugar over the platform
// http package, so module code never imports internal/platform/net/http
// directly
package httpkit

import (
	"net/http"

	phttp "handoff/internal/platform/net/http"
)

type (
	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Call adapts a body-less handler into the envelope protocol. Handlers may
// return a prebuilt phttp.Response to control the status themselves
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
