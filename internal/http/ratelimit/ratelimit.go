// Package ratelimit tracks a token-bucket limiter per client address,
// guarding the report export endpoint.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex
)

// Visitor returns the limiter for the given client address, creating one
// when the address is new. Report generation is allowed at one request per
// second with a burst of three.
func Visitor(addr string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[addr]
	if !exists {
		limiter := rate.NewLimiter(1, 3)
		visitors[addr] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop drops limiters for clients not seen in five minutes.
func StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for addr, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, addr)
			}
		}
		mu.Unlock()
	}
}

// Reset clears all tracked limiters.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*clientLimiter)
}
