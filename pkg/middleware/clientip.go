package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/venuebook/config"
)

// ClientIP returns the caller's address. X-Forwarded-For is honoured only
// when the direct peer is listed in TRUSTED_PROXIES.
func ClientIP(r *http.Request) string {
	return clientIP(r, config.TrustedProxies())
}

func clientIP(r *http.Request, trusted []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	fwd := r.Header.Get("X-Forwarded-For")
	if fwd == "" || !isTrusted(host, trusted) {
		return host
	}
	return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
}

func isTrusted(host string, trusted []string) bool {
	for _, p := range trusted {
		if p == host {
			return true
		}
	}
	return false
}
