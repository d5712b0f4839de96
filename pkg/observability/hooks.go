// Package observability provides hooks for metrics, tracing, and logging.
//
// The engine and pool emit events through small hook interfaces instead of
// depending on a metrics backend. Consumers register implementations at
// startup; everything defaults to no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetPoolHooks(&myPoolHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnTile(visible, added, removed, duration)
//
// Engine and pool hooks run on the layout thread in the middle of a pass and
// must return quickly. They take no context because layout never blocks.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from layout passes.
type EngineHooks interface {
	// OnTile reports a completed tiling pass: the visible count afterwards and
	// how many cells were materialized and evicted.
	OnTile(visible, added, removed int, duration time.Duration)

	// OnRecenter reports a recenter that moved the offset by delta.
	OnRecenter(delta float64, forced bool)

	// OnRelayout reports an anchor relayout. anchor is -1 when no anchor was
	// found and the first visible item was kept fixed instead.
	OnRelayout(anchor, repositioned int, duration time.Duration)

	// OnPageChange reports a page-snap decision that changed the current page.
	OnPageChange(from, to int)
}

// =============================================================================
// Pool Hooks
// =============================================================================

// PoolHooks receives events from the cell pool.
type PoolHooks interface {
	// OnAcquire records a dequeue; reused is false when the factory ran.
	OnAcquire(typeKey string, reused bool)

	// OnRelease records a cell leaving the window; retained is false when the
	// free list was full and the cell was discarded.
	OnRelease(typeKey string, retained bool)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnTile(int, int, int, time.Duration) {}
func (NoopEngineHooks) OnRecenter(float64, bool)            {}
func (NoopEngineHooks) OnRelayout(int, int, time.Duration)  {}
func (NoopEngineHooks) OnPageChange(int, int)               {}

// NoopPoolHooks is a no-op implementation of PoolHooks.
type NoopPoolHooks struct{}

func (NoopPoolHooks) OnAcquire(string, bool) {}
func (NoopPoolHooks) OnRelease(string, bool) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	poolHooks   PoolHooks   = NoopPoolHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any layout pass.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetPoolHooks registers custom pool hooks.
func SetPoolHooks(h PoolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		poolHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Pool returns the registered pool hooks.
func Pool() PoolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return poolHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	poolHooks = NoopPoolHooks{}
	cacheHooks = NoopCacheHooks{}
}
