package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/shashiranjanraj/venuebook/config"
)

// CORSOptions configures cross-origin access to the JSON API.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // seconds a preflight may be cached
}

// DefaultCORSOptions allows CORS_ORIGINS (every origin when unset) to issue
// GET and POST queries.
func DefaultCORSOptions() CORSOptions {
	origins := []string{"*"}
	if raw := config.Get("CORS_ORIGINS", ""); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return CORSOptions{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}
}

// CORS answers preflights and sets the Access-Control headers. Credentials
// are never allowed, so session cookies do not travel cross-origin.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   opts.AllowedMethods,
		AllowedHeaders:   opts.AllowedHeaders,
		AllowCredentials: false,
		MaxAge:           opts.MaxAge,
	})
}
