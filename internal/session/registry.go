package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/booknest/storefront/internal/orders"
	"github.com/google/uuid"
)

const (
	defaultIdleTTL     = 30 * time.Minute
	defaultMaxSessions = 10000
)

// RegistryParams configure a Registry.
type RegistryParams struct {
	Session     Params
	IdleTTL     time.Duration
	MaxSessions int
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps one Session per shopper id in memory. Sessions idle longer
// than the TTL are evicted lazily on Resolve and by Run; when the registry is
// full the least recently seen session makes room for a new one.
type Registry struct {
	params  Params
	idleTTL time.Duration
	max     int
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry(params RegistryParams) (*Registry, error) {
	if err := params.Session.validate(); err != nil {
		return nil, err
	}
	ttl := params.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	limit := params.MaxSessions
	if limit <= 0 {
		limit = defaultMaxSessions
	}
	now := params.Session.Now
	if now == nil {
		now = time.Now
	}
	// One generator for every session keeps order ids unique process-wide.
	if params.Session.IDs == nil {
		params.Session.IDs = orders.NewIDGenerator(now)
	}
	return &Registry{
		params:   params.Session,
		idleTTL:  ttl,
		max:      limit,
		now:      now,
		sessions: map[string]*entry{},
	}, nil
}

// Resolve returns the live session for id, or a fresh session under a new id
// when id is empty, unknown or expired. created reports the latter.
func (r *Registry) Resolve(id string) (s *Session, created bool, err error) {
	r.mu.Lock()
	defer func() {
		n := len(r.sessions)
		r.mu.Unlock()
		r.params.Metrics.SetActiveSessions(n)
	}()

	now := r.now()
	if e, ok := r.sessions[id]; ok {
		if now.Sub(e.lastSeen) <= r.idleTTL {
			e.lastSeen = now
			return e.session, false, nil
		}
		delete(r.sessions, id)
	}

	if len(r.sessions) >= r.max {
		r.sweepLocked(now)
	}
	if len(r.sessions) >= r.max {
		r.evictOldestLocked()
	}

	fresh, err := New(uuid.NewString(), r.params)
	if err != nil {
		return nil, false, fmt.Errorf("create session: %w", err)
	}
	r.sessions[fresh.ID()] = &entry{session: fresh, lastSeen: now}
	return fresh, true, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts expired sessions and reports how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	removed := r.sweepLocked(r.now())
	n := len(r.sessions)
	r.mu.Unlock()
	r.params.Metrics.SetActiveSessions(n)
	return removed
}

func (r *Registry) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
	}
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = r.idleTTL / 2
	}
	logg := r.params.Logger
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logg.Info(ctx, "session sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				sweepCtx := logg.WithFields(ctx, map[string]any{
					"event":   "session.sweep",
					"removed": removed,
				})
				logg.Info(sweepCtx, "expired sessions evicted")
			}
		}
	}
}
