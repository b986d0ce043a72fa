package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// wildcard in an allow-list matches any value.
const wildcard = "*"

// allMethods is advertised in preflight replies when every method is allowed.
var allMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// CORSConfig contains configuration for CORS middleware.
type CORSConfig struct {
	// Enabled controls whether CORS is enabled.
	Enabled bool

	// AllowedOrigins is a list of allowed origins for CORS.
	// Use ["*"] to allow all origins.
	AllowedOrigins []string

	// AllowedMethods is a list of allowed HTTP methods. ["*"] allows all.
	AllowedMethods []string

	// AllowedHeaders is a list of allowed HTTP headers. ["*"] reflects
	// whatever the preflight asks for.
	AllowedHeaders []string

	// ExposedHeaders is a list of headers exposed to clients.
	ExposedHeaders []string

	// MaxAge is the maximum age (in seconds) for preflight cache.
	MaxAge int

	// AllowCredentials controls whether credentials are allowed. With a
	// wildcard origin the request origin is echoed instead of "*", since
	// browsers reject "*" on credentialed requests.
	AllowCredentials bool
}

// DefaultCORSConfig returns the open policy: any origin, method and header,
// credentials allowed.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		Enabled:          true,
		AllowedOrigins:   []string{wildcard},
		AllowedMethods:   []string{wildcard},
		AllowedHeaders:   []string{wildcard},
		ExposedHeaders:   []string{RequestIDHeader},
		MaxAge:           600,
		AllowCredentials: true,
	}
}

// CORSMiddleware adds Cross-Origin Resource Sharing headers to responses and
// answers preflight requests (OPTIONS with Access-Control-Request-Method)
// with 204 No Content without calling the next handler.
//
// Example usage:
//
//	handler = CORSMiddleware(DefaultCORSConfig())(handler)
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			allowed := origin != "" && isOriginAllowed(origin, config.AllowedOrigins)

			if allowed {
				if contains(config.AllowedOrigins, wildcard) && !config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Origin", wildcard)
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}

				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}

				if len(config.ExposedHeaders) > 0 {
					w.Header().Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					setPreflightHeaders(w, r, config)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setPreflightHeaders(w http.ResponseWriter, r *http.Request, config *CORSConfig) {
	methods := config.AllowedMethods
	if contains(methods, wildcard) {
		methods = allMethods
	}
	if len(methods) > 0 {
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
	}

	if contains(config.AllowedHeaders, wildcard) {
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			w.Header().Set("Access-Control-Allow-Headers", requested)
			w.Header().Add("Vary", "Access-Control-Request-Headers")
		}
	} else if len(config.AllowedHeaders) > 0 {
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
	}

	if config.MaxAge > 0 {
		w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
	}
}

// isOriginAllowed checks if an origin is in the allowed list.
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == wildcard || allowed == origin {
			return true
		}
	}
	return false
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
