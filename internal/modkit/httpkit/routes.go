package httpkit

import "net/http"

// MountUnder nests mount under prefix with the module's middleware chain
// installed first, so every handler the module registers runs behind it.
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
