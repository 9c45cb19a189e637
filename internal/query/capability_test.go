package query

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCapabilityInitialState(t *testing.T) {
	if !NewCapability(true, discardLogger()).Available() {
		t.Error("expected available")
	}
	if NewCapability(false, discardLogger()).Available() {
		t.Error("expected unavailable")
	}
}

func TestCapabilityDowngradeIsOneWay(t *testing.T) {
	c := NewCapability(true, discardLogger())
	c.MarkUnavailable()
	if c.Available() {
		t.Fatal("downgrade should stick")
	}
	// Repeated downgrades stay unavailable and do not panic.
	c.MarkUnavailable()
	if c.Available() {
		t.Fatal("still unavailable")
	}
}

func TestCapabilityConcurrentAccess(t *testing.T) {
	c := NewCapability(true, discardLogger())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Available()
		}()
		go func() {
			defer wg.Done()
			c.MarkUnavailable()
		}()
	}
	wg.Wait()
	if c.Available() {
		t.Error("expected unavailable after concurrent downgrades")
	}
}
