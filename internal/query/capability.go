package query

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Capability tracks whether the store's full-text index is usable.
// It is the only state shared between requests: reads are atomic, and
// the only transition is a one-way downgrade to unavailable that
// holds until the next startup cycle.
type Capability struct {
	available atomic.Bool
	downgrade sync.Once
	logger    *slog.Logger
}

// NewCapability creates a handle with the given initial state,
// normally the outcome of EnsureTextIndex at startup.
func NewCapability(available bool, logger *slog.Logger) *Capability {
	c := &Capability{logger: logger}
	c.available.Store(available)
	return c
}

// Available reports whether full-text search can be used.
func (c *Capability) Available() bool {
	return c.available.Load()
}

// MarkUnavailable downgrades the capability for the rest of the
// process lifetime. The downgrade is logged at most once.
func (c *Capability) MarkUnavailable() {
	if !c.available.Load() {
		return
	}
	c.available.Store(false)
	c.downgrade.Do(func() {
		c.logger.Warn("full-text index unavailable, degrading to substring search")
	})
}
