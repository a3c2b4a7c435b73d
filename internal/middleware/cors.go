package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-ID"
	corsMaxAge       = "3600"
)

// CORSMiddleware answers cross-origin requests for the configured origins.
// A "*" entry opens the API to every origin. Other entries match case-insensitively
// and the request origin is echoed back.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")
	listed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		listed[strings.ToLower(o)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := r.Header.Get("Origin"); origin != "" {
				switch {
				case allowAny:
					h.Set("Access-Control-Allow-Origin", "*")
				default:
					// responses differ per origin
					h.Add("Vary", "Origin")
					if _, ok := listed[strings.ToLower(origin)]; ok {
						h.Set("Access-Control-Allow-Origin", origin)
					}
				}
			}

			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
