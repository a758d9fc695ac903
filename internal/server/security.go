package server

import (
	"net/http"
	"strings"
)

// SecurityConfig holds the security settings applied to every HTTP route.
type SecurityConfig struct {
	// EnableCORS toggles CORS header emission.
	EnableCORS bool
	// AllowedOrigins lists origins allowed by CORS. "*" matches everything.
	AllowedOrigins []string
	// AllowedMethods lists methods advertised in CORS responses.
	AllowedMethods []string
	// MaxBoardSize caps the board size accepted by the solve API. Exhaustive
	// search beyond this size would hold the request open far too long.
	MaxBoardSize int
}

// DefaultSecurityConfig returns the standard security configuration:
// CORS enabled for any origin, read-only methods, and a board size cap
// that keeps solve requests bounded.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxBoardSize:   16,
	}
}

// SecurityMiddleware wraps a handler with security headers, CORS handling,
// and OPTIONS preflight short-circuiting.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		// Preflight requests end here
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin returns the CORS origin value to emit, or "" when the request
// origin is not allowed. A wildcard entry matches even without an Origin
// header so that simple GET clients still receive permissive headers.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
