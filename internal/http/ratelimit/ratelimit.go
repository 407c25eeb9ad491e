package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP. Entries idle for two
// cleanup intervals are dropped by a background sweep so the map stays
// bounded under IP churn.
type IPRateLimiter struct {
	mu             sync.Mutex
	buckets        map[string]*bucket
	rate           rate.Limit
	burst          int
	sweep          time.Duration
	trustedProxies []*net.IPNet
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing r requests per second with the given
// burst. trustedProxies lists CIDR ranges (or single IPs) of reverse
// proxies whose X-Forwarded-For is honored; when empty, forwarding headers
// are trusted from anyone.
func New(r rate.Limit, burst int, sweep time.Duration, trustedProxies []string) *IPRateLimiter {
	l := &IPRateLimiter{
		buckets: make(map[string]*bucket),
		rate:    r,
		burst:   burst,
		sweep:   sweep,
	}
	for _, entry := range trustedProxies {
		if ipnet := parseCIDROrIP(entry); ipnet != nil {
			l.trustedProxies = append(l.trustedProxies, ipnet)
		}
	}
	go l.sweepStale()
	return l
}

// Middleware rejects requests exceeding the per-IP budget with 429.
func (l *IPRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(l.clientIP(r)) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *IPRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()
	return b.limiter.Allow()
}

func (l *IPRateLimiter) sweepStale() {
	ticker := time.NewTicker(l.sweep)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-2 * l.sweep)
		l.mu.Lock()
		for ip, b := range l.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

// clientIP resolves the originating client address. X-Forwarded-For and
// X-Real-IP are only honored when the direct peer is a trusted proxy (or
// when no trusted proxies are configured).
func (l *IPRateLimiter) clientIP(r *http.Request) string {
	remote := parseAddr(r.RemoteAddr)

	if len(l.trustedProxies) > 0 && !l.isTrusted(remote) {
		return remote.String()
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Leftmost entry is the original client.
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}
	return remote.String()
}

func (l *IPRateLimiter) isTrusted(ip net.IP) bool {
	for _, ipnet := range l.trustedProxies {
		if ipnet.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDROrIP(s string) *net.IPNet {
	if _, ipnet, err := net.ParseCIDR(s); err == nil {
		return ipnet
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return nil
	}
	suffix := "/32"
	if ip.To4() == nil {
		suffix = "/128"
	}
	_, ipnet, _ := net.ParseCIDR(s + suffix)
	return ipnet
}

func parseAddr(addr string) net.IP {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(addr)
}
