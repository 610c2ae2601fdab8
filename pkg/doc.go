// Package pkg provides the libraries behind floatzone, a CSS float placer.
//
// # Overview
//
// Floatzone implements the float rules of CSS 2.1 §9.5.1: given a containing
// block of fixed inline size and a sequence of floats, each float is placed
// as high as possible, then as far toward its side as possible, without
// overlapping the floats before it. The pkg directory is organized bottom-up:
//
//  1. [splay] - Generic self-adjusting ordered map
//  2. [bands] - Band map: the block axis cut into bands of constant occupancy
//  3. [floats] - Float placement and clearance for one formatting context
//  4. [scenario] - Scenario files, random scenarios and the scenario runner
//
// # Architecture
//
// The data flow for one float:
//
//	floats.Context.AddFloat(side, size, ceiling, clear)
//	         ↓
//	    [bands] LowestEdge (clearance raises the ceiling)
//	         ↓
//	    [bands] QueryWindow, repeated until the float fits
//	         ↓
//	    [bands] Occupy (record the float, merge equal bands)
//	         ↓
//	    [splay] split, insert and remove band boundaries
//
// # Quick Start
//
//	fc := floats.New(200)
//	fc.AddFloat(floats.Left, floats.Size{Inline: 50, Block: 50}, 0, floats.ClearNone)  // (0, 0)
//	fc.AddFloat(floats.Right, floats.Size{Inline: 60, Block: 50}, 0, floats.ClearNone) // (140, 0)
//	fc.AddFloat(floats.Left, floats.Size{Inline: 100, Block: 50}, 0, floats.ClearNone) // (0, 50)
//	fc.Clearance(floats.ClearBoth)                                                     // 100
//
// # Supporting Packages
//
// [floats/naive] - Brute-force placer with the same results, used as the
// reference in tests and by the verify command.
//
// [errors] - Coded errors. Libraries panic with them on invalid input.
//
// [observability] - Hooks for placement and scenario events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/floats -run Naive  # Randomized comparison with the reference
//	go test -run Example ./pkg/...   # Examples only
//
// [splay]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/splay
// [bands]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/bands
// [floats]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/floats
// [floats/naive]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/floats/naive
// [scenario]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/scenario
// [errors]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/floatzone/pkg/buildinfo
package pkg
