// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about float placement and scenario runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so package floats can report
// every placement without importing a metrics client.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    observability.SetScenarioHooks(&myScenarioHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scenario().OnRunStart(ctx, name, len(floats))
//	// ... place floats ...
//	observability.Scenario().OnRunComplete(ctx, name, placed, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from a float context. Placement is a
// synchronous in-memory operation, so these hooks carry no context and must
// return quickly.
type PlacementHooks interface {
	// OnFloatPlaced records a placed float: its side, its origin, the number
	// of windows probed and the number of bands examined while probing.
	OnFloatPlaced(side string, x, y float64, probes, bands int)

	// OnClearance records a clearance query and its answer.
	OnClearance(clear string, edge float64)
}

// =============================================================================
// Scenario Hooks
// =============================================================================

// ScenarioHooks receives events from the scenario runner.
type ScenarioHooks interface {
	OnRunStart(ctx context.Context, name string, floats int)
	OnRunComplete(ctx context.Context, name string, placed int, duration time.Duration, err error)

	// OnVerifyComplete records a comparison against the reference placer.
	OnVerifyComplete(ctx context.Context, name string, mismatches int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnFloatPlaced(string, float64, float64, int, int) {}
func (NoopPlacementHooks) OnClearance(string, float64)                      {}

// NoopScenarioHooks is a no-op implementation of ScenarioHooks.
type NoopScenarioHooks struct{}

func (NoopScenarioHooks) OnRunStart(context.Context, string, int) {}
func (NoopScenarioHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopScenarioHooks) OnVerifyComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	scenarioHooks  ScenarioHooks  = NoopScenarioHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any floats are placed.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetScenarioHooks registers custom scenario hooks.
// This should be called once at application startup before any scenario runs.
func SetScenarioHooks(h ScenarioHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scenarioHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Scenario returns the registered scenario hooks.
func Scenario() ScenarioHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scenarioHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	scenarioHooks = NoopScenarioHooks{}
}
