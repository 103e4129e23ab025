// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about scene loading and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for each event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the render packages stay
// free of any observability framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, runID)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, runID, objects, bytes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// OnSceneLoaded fires after a scene file was decoded into figures.
	OnSceneLoaded(ctx context.Context, path string, figures int)

	// OnRenderStart fires before a document is built.
	OnRenderStart(ctx context.Context, runID string)

	// OnRenderComplete fires once per run, with err set if the run failed.
	// objects and bytes describe what was written before any failure.
	OnRenderComplete(ctx context.Context, runID string, objects int, bytes int64, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnSceneLoaded(context.Context, string, int) {}
func (NoopRenderHooks) OnRenderStart(context.Context, string)      {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, int64, time.Duration, error) {
}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
