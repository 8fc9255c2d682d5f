package webclient

import (
	"context"
	"sync"
	"time"
)

// Resolver answers "is the live catalog reachable" with a cached verdict.
// It is lazily initialized and single-flight: concurrent callers during a
// probe wait for the one in-flight result instead of issuing their own.
// The verdict is trusted for TTL, then the next caller re-probes. Owned and
// passed explicitly; there is no package-level instance.
type Resolver struct {
	probe func(context.Context) error
	ttl   time.Duration

	mu        sync.Mutex
	inflight  chan struct{}
	checkedAt time.Time
	online    bool
}

func NewResolver(probe func(context.Context) error, ttl time.Duration) *Resolver {
	return &Resolver{probe: probe, ttl: ttl}
}

// Online reports reachability, probing at most once per TTL window.
func (r *Resolver) Online(ctx context.Context) bool {
	for {
		r.mu.Lock()
		if !r.checkedAt.IsZero() && time.Since(r.checkedAt) < r.ttl {
			v := r.online
			r.mu.Unlock()
			return v
		}
		if r.inflight != nil {
			wait := r.inflight
			r.mu.Unlock()
			select {
			case <-wait:
			case <-ctx.Done():
				return false
			}
			continue
		}
		done := make(chan struct{})
		r.inflight = done
		r.mu.Unlock()

		err := r.probe(ctx)

		r.mu.Lock()
		r.online = err == nil
		r.checkedAt = time.Now()
		r.inflight = nil
		close(done)
		v := r.online
		r.mu.Unlock()
		return v
	}
}

// Invalidate discards the cached verdict so the next caller re-probes.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.checkedAt = time.Time{}
	r.mu.Unlock()
}
