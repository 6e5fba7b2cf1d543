package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter tracks a token bucket per client, evicting buckets that have
// been idle longer than the expiry.
type Limiter struct {
	expiry   time.Duration
	burst    int
	limitRPS float64

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewLimiter(burst int, expiryMinutes int, limitRPS float64) *Limiter {
	lm := &Limiter{
		expiry:   time.Duration(expiryMinutes) * time.Minute,
		burst:    burst,
		limitRPS: limitRPS,
		clients:  make(map[string]*clientLimiter),
	}
	go lm.refresh()
	return lm
}

// Check reports whether the client may proceed, creating its bucket on
// first sight.
func (l *Limiter) Check(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[id]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(l.limitRPS), l.burst),
		}
		l.clients[id] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

func (l *Limiter) refresh() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for id, v := range l.clients {
			if time.Since(v.lastAccess) > l.expiry {
				delete(l.clients, id)
			}
		}
		l.mu.Unlock()
	}
}

// Every converts a per-event interval into a requests-per-second limit.
func Every(interval time.Duration) float64 {
	return float64(rate.Every(interval))
}
