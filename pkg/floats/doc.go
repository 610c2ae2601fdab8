// Package floats places CSS floats inside a containing block.
//
// A [Context] implements the float rules of CSS 2.1 §9.5.1 for one block
// formatting context: every float requested with [Context.AddFloat] is put as
// high as possible, then as far toward its side as possible, without
// overlapping any float placed before it. Floats are never moved once placed,
// so ties are resolved by call order.
//
// # Placement
//
// The context keeps a [bands.Map] of the space taken on each side. Placing a
// float of size w×h with a given ceiling:
//
//  1. raises the ceiling to the clearance of the requested clear sides
//  2. probes the band map at y = ceiling; while the float does not fit,
//     moves y to the next band boundary the probe reports
//  3. aligns the float against the largest extent on its side over
//     [y, y+h) and records it in the band map
//
// Floats in the same context share a single band map, so a Context must not be
// used from more than one goroutine. Independent contexts are independent.
//
// # Errors
//
// Sizes, ceilings and sides are validated before anything changes. Invalid
// input is a programming error and panics with an *errors.Error; callers that
// accept untrusted input can run [Request.Validate] first.
//
// # Usage
//
//	fc := floats.New(200)
//	a := fc.AddFloat(floats.Left, floats.Size{Inline: 50, Block: 50}, 0, floats.ClearNone)
//	b := fc.AddFloat(floats.Right, floats.Size{Inline: 60, Block: 50}, 0, floats.ClearNone)
//	y := fc.Clearance(floats.ClearBoth)
package floats
