package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEngineHooks{}
	e.OnTile(4, 4, 0, time.Millisecond)
	e.OnRecenter(-1200, false)
	e.OnRelayout(7, 5, time.Millisecond)
	e.OnPageChange(2, 3)

	p := NoopPoolHooks{}
	p.OnAcquire("card", true)
	p.OnRelease("card", false)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "trace")
	c.OnCacheMiss(ctx, "trace")
	c.OnCacheSet(ctx, "trace", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Pool().(NoopPoolHooks); !ok {
		t.Error("Pool() should return NoopPoolHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}

	customPool := &testPoolHooks{}
	SetPoolHooks(customPool)
	if Pool() != customPool {
		t.Error("SetPoolHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore NoopEngineHooks")
	}
	if _, ok := Pool().(NoopPoolHooks); !ok {
		t.Error("Reset() should restore NoopPoolHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEngineHooks{}
	SetEngineHooks(custom)

	SetEngineHooks(nil)

	if Engine() != custom {
		t.Error("SetEngineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testEngineHooks struct{ NoopEngineHooks }
type testPoolHooks struct{ NoopPoolHooks }
type testCacheHooks struct{ NoopCacheHooks }
