// Package scenario loads, generates and runs float placement scenarios.
//
// # Overview
//
// A scenario is a containing block width and an ordered list of floats to
// place in it, optionally annotated with the positions they are expected to
// end up at. Scenarios drive the floatzone command line tool and the package
// tests: they are a reproducible way to describe a layout, run it through a
// [floats.Context] and check the outcome.
//
// # File Format
//
// Scenarios are written in TOML or JSON. The format is chosen from the file
// extension by [Load]. A TOML scenario looks like this:
//
//	name = "two columns"
//	inline_size = 200
//
//	[[float]]
//	label = "nav"
//	side = "left"
//	width = 50
//	height = 50
//	expect = [0, 0]
//
//	[[float]]
//	side = "right"
//	width = 60
//	height = 50
//	clear = "left"
//
//	[[clearance]]
//	clear = "both"
//	expect = 100
//
// Sides are "left" or "right"; clear values are "none", "left", "right" or
// "both". Unknown keys are rejected.
//
// With respect_order set, each float's ceiling is raised to the top of the
// float placed before it, as CSS 2.1 §9.5.1 requires of floats that come from
// consecutive boxes in one block formatting context.
//
// # Running
//
// [Runner.Run] places every float and reports origins, band statistics and
// expectation mismatches. [Runner.Verify] additionally runs the brute-force
// placer from package naive and the band map consistency check, so it can
// catch placement bugs in scenarios that carry no expectations, such as those
// produced by [Random].
//
// Each run owns its own float context; a Runner may be shared by goroutines
// running independent scenarios.
package scenario
