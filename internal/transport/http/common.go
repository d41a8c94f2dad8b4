package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mitsuba/clubport/internal/pkg/circuitbreaker"
	"github.com/mitsuba/clubport/internal/pkg/errors"
)

func decodeJSONRequest(r *http.Request, out interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return io.EOF
	}
	return json.Unmarshal(body, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type rateState struct {
	windowStart time.Time
	count       int
}

var (
	rateMu      sync.Mutex
	rateByIP    = map[string]*rateState{}
	redisClient *redis.Client
)

func SetRedisClient(c *redis.Client) {
	redisClient = c
}

func RateLimitMiddleware(rps, burst int) func(http.Handler) http.Handler {
	max := rps
	if burst > max {
		max = burst
	}
	if max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			now := time.Now()
			if redisClient != nil {
				key := "rate:" + ip
				ctx := context.Background()
				count, err := redisClient.Incr(ctx, key).Result()
				if err == nil {
					_ = redisClient.Expire(ctx, key, time.Second).Err()
					if int(count) > max {
						errors.WriteError(w, r, errors.New(http.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded"))
						return
					}
					next.ServeHTTP(w, r)
					return
				}
			}

			rateMu.Lock()
			state, ok := rateByIP[ip]
			if !ok {
				state = &rateState{windowStart: now}
				rateByIP[ip] = state
			}
			if now.Sub(state.windowStart) >= time.Second {
				state.windowStart = now
				state.count = 0
			}
			state.count++
			over := state.count > max
			rateMu.Unlock()

			if over {
				errors.WriteError(w, r, errors.New(http.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func IdempotencyMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if redisClient != nil {
				ctx := context.Background()
				ok, err := redisClient.SetNX(ctx, "idem:"+key, "1", time.Hour).Result()
				if err == nil && !ok {
					errors.WriteError(w, r, errors.New(http.StatusConflict, "Conflict", "Duplicate request"))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func MaxBodySizeMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				errors.WriteError(w, r, errors.New(http.StatusRequestEntityTooLarge, "Payload Too Large", fmt.Sprintf("Request body too large (max %d bytes)", limit)))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func CircuitBreakerMiddleware(threshold int, timeout string, halfOpenMax int) func(http.Handler) http.Handler {
	d, err := time.ParseDuration(timeout)
	if err != nil {
		d = 30 * time.Second
	}
	breaker := circuitbreaker.NewBreaker(threshold, d, halfOpenMax)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !breaker.Allow() {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(d.Seconds())))
				errors.WriteError(w, r, errors.New(http.StatusServiceUnavailable, "Service Unavailable", "Circuit breaker is open"))
				return
			}

			sw := &statusResponseWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			if sw.status >= 500 {
				breaker.RecordFailure()
			} else {
				breaker.RecordSuccess()
			}
		})
	}
}
