package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/gossip-murmur/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
//
// Admin routes authenticate with the session cookie, so credentials are only
// granted to origins listed by name. A "*" entry admits any other origin to
// the public API but is answered with a literal "*" and never with
// Access-Control-Allow-Credentials.
func CORS(cfg config.CORSConfig) Middleware {
	policy := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := false
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				allowed = policy.apply(w.Header(), origin, cfg.AllowCredentials)
			}

			if r.Method == http.MethodOptions {
				if allowed {
					w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					w.Header().Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originPolicy struct {
	named    map[string]struct{}
	wildcard bool
}

func parseOrigins(raw string) originPolicy {
	p := originPolicy{named: make(map[string]struct{})}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.wildcard = true
		default:
			p.named[o] = struct{}{}
		}
	}
	return p
}

// apply writes the allow headers for origin and reports whether it is allowed.
func (p originPolicy) apply(h http.Header, origin string, credentials bool) bool {
	if _, ok := p.named[origin]; ok {
		h.Set("Access-Control-Allow-Origin", origin)
		if credentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}
		return true
	}
	if p.wildcard {
		h.Set("Access-Control-Allow-Origin", "*")
		return true
	}
	return false
}
