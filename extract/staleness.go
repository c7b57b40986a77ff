package extract

import (
	"sync"
	"time"

	"github.com/jmhodges/clock"
)

// StalenessTracker tells whether the ruleset is older than its expiration.
type StalenessTracker struct {
	clock clock.Clock

	mu        sync.RWMutex
	lastBuild time.Time
	expire    time.Duration
}

// NewStalenessTracker creates a tracker. An `expire` of 0 means the ruleset never expires.
func NewStalenessTracker(clk clock.Clock, expire time.Duration) *StalenessTracker {
	return &StalenessTracker{clock: clk, expire: expire}
}

// MarkBuilt records a successful compilation.
func (t *StalenessTracker) MarkBuilt() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastBuild = t.clock.Now()
}

func (t *StalenessTracker) LastBuild() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.lastBuild
}

func (t *StalenessTracker) SetExpire(expire time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expire = expire
}

func (t *StalenessTracker) Expire() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.expire
}

// IsStale returns true if an expiration is set and more time than it has passed since the last build.
func (t *StalenessTracker) IsStale() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.expire <= 0 || t.lastBuild.IsZero() {
		return false
	}

	return t.clock.Now().Sub(t.lastBuild) > t.expire
}
