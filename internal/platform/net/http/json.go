package http

import (
	"net/http"

	"handoff/internal/platform/net/http/bind"
)

// JSONHandler parses and validates the request body into T before calling fn.
// Decode and validation failures come back as coded errors on the envelope
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
