package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter mantém um token bucket por IP de origem
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewIPRateLimiter(cfg config.LoginRateLimit) *IPRateLimiter {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rpm / 60),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consome um token do IP informado
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, key)
		}
	}

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// RateLimit rejeita com 429 as requisições acima do limite do IP
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r)
			if !limiter.Allow(ip) {
				log.ForContext(r.Context()).WithField("client_ip", ip).Warn("Limite de requisições atingido")
				w.Header().Set("Retry-After", "60")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas tentativas, tente novamente mais tarde", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
