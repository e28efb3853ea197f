package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(a, b)(h) is a(b(h)): a runs first.
// Nil entries are skipped so optional middleware can be left unset.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Handler wraps a single route handler with its own middleware, such as a
// rate limit or RequireAdmin.
func Handler(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}
