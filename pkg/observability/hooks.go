// Package observability provides hooks for metrics, tracing, and logging.
//
// Banner rendering stays free of any observability backend. Consumers
// register hooks at startup and receive events about requests, background
// rendering and raster encoding.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The HTTP server registers a Prometheus implementation; the CLI render
// command keeps the no-op defaults.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetEncodeHooks(&myEncodeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, theme)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, theme, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Request Hooks
// =============================================================================

// RequestHooks receives one event per handled banner request.
type RequestHooks interface {
	// OnResponse records a finished request. Theme is the resolved theme id
	// and format the effective output format.
	OnResponse(ctx context.Context, theme, format string, status int, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from banner rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, theme string)
	OnRenderComplete(ctx context.Context, theme string, duration time.Duration, err error)
}

// =============================================================================
// Encode Hooks
// =============================================================================

// EncodeHooks receives events from raster encoding.
type EncodeHooks interface {
	OnEncodeStart(ctx context.Context, format string)

	// OnEncodeComplete records the encoded size in bytes, zero on failure.
	OnEncodeComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopEncodeHooks is a no-op implementation of EncodeHooks.
type NoopEncodeHooks struct{}

func (NoopEncodeHooks) OnEncodeStart(context.Context, string)                               {}
func (NoopEncodeHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	requestHooks RequestHooks = NoopRequestHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	encodeHooks  EncodeHooks  = NoopEncodeHooks{}
	hooksMu      sync.RWMutex
)

// SetRequestHooks registers custom request hooks.
// This should be called once at application startup before serving requests.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetEncodeHooks registers custom encode hooks.
// This should be called once at application startup before any encoding.
func SetEncodeHooks(h EncodeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		encodeHooks = h
	}
}

// Request returns the registered request hooks.
func Request() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Encode returns the registered encode hooks.
func Encode() EncodeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return encodeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	requestHooks = NoopRequestHooks{}
	renderHooks = NoopRenderHooks{}
	encodeHooks = NoopEncodeHooks{}
}
