package ratelimit

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Limiter gates requests per caller key. Implementations answer whether a
// request may proceed now and, if not, how long the caller should wait.
// The in-memory implementation is per-process; a shared-cache
// implementation can be substituted behind this interface without touching
// the handlers.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

// Memory is a sliding-window limiter holding per-key request timestamps.
// Idle keys expire with the window. The mutex makes check-and-append
// atomic under concurrent arrivals so bursts are never undercounted.
type Memory struct {
	mu     sync.Mutex
	store  *gocache.Cache
	limit  int
	window time.Duration
}

func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		store:  gocache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

func (m *Memory) Allow(key string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var stamps []time.Time
	if v, ok := m.store.Get(key); ok {
		stamps = v.([]time.Time)
	}

	kept := stamps[:0]
	for _, ts := range stamps {
		if now.Sub(ts) < m.window {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= m.limit {
		retry := m.window - now.Sub(kept[0])
		if retry < 0 {
			retry = 0
		}
		m.store.Set(key, kept, m.window)
		return false, retry
	}

	kept = append(kept, now)
	m.store.Set(key, kept, m.window)
	return true, 0
}
