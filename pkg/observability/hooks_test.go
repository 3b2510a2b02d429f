package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopRequestHooks{}.OnResponse(ctx, "stars", "svg", 200, time.Millisecond)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "kuro")
	r.OnRenderComplete(ctx, "kuro", time.Millisecond, nil)

	e := NoopEncodeHooks{}
	e.OnEncodeStart(ctx, "webp")
	e.OnEncodeComplete(ctx, "webp", 2048, time.Second, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("Request() should return NoopRequestHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Encode() should return NoopEncodeHooks by default")
	}

	customRequest := &testRequestHooks{}
	SetRequestHooks(customRequest)
	if Request() != customRequest {
		t.Error("SetRequestHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customEncode := &testEncodeHooks{}
	SetEncodeHooks(customEncode)
	if Encode() != customEncode {
		t.Error("SetEncodeHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Reset() should restore NoopEncodeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testRenderHooks{}
	SetRenderHooks(h)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Render().OnRenderStart(context.Background(), "matrix")
			Render().OnRenderComplete(context.Background(), "matrix", time.Millisecond, nil)
		}()
	}
	wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started != 8 || h.completed != 8 {
		t.Errorf("events = %d started, %d completed; want 8, 8", h.started, h.completed)
	}
}

// Test implementations
type testRequestHooks struct{ NoopRequestHooks }
type testEncodeHooks struct{ NoopEncodeHooks }

type testRenderHooks struct {
	mu        sync.Mutex
	started   int
	completed int
}

func (h *testRenderHooks) OnRenderStart(context.Context, string) {
	h.mu.Lock()
	h.started++
	h.mu.Unlock()
}

func (h *testRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {
	h.mu.Lock()
	h.completed++
	h.mu.Unlock()
}
