package http

import (
	"net"
	"net/http"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/http/ratelimit"
)

// ExportRateLimit throttles report generation per client address.
func ExportRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ratelimit.Visitor(clientAddr(r)).Allow() {
			http.Error(w, "too many export requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
