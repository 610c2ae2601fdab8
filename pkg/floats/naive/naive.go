// Package naive is a brute-force float placer used as a reference for
// package floats.
//
// It keeps every placed float in a flat list and, for each new float, tries
// the ceiling and then every float bottom below it in ascending order. Each
// try scans the whole list, so placing n floats costs O(n³) in the worst case.
// The results are the same as floats.Context for every input.
package naive

import (
	"slices"

	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/floats"
)

type rect struct {
	side        floats.Side
	top, bottom float64
	extent      float64 // inline space taken from the side's edge
}

// Placer places floats by exhaustive search.
type Placer struct {
	inlineSize float64
	rects      []rect
}

// New returns an empty placer for a containing block of the given inline
// size.
func New(inlineSize float64) *Placer {
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "containing block inline size", inlineSize))
	return &Placer{inlineSize: inlineSize}
}

// AddFloat places a float and returns its origin.
func (p *Placer) AddFloat(side floats.Side, size floats.Size, ceiling float64, clear floats.Clear) floats.Origin {
	return p.Place(floats.Request{Side: side, Size: size, Ceiling: ceiling, Clear: clear}).Origin
}

// Place places a float. Probes counts the candidate positions tried; Bands
// is always zero.
func (p *Placer) Place(r floats.Request) floats.Placement {
	errors.Must(r.Validate(p.inlineSize))

	ceiling := max(r.Ceiling, p.lowest(r.Clear.Sides()))
	candidates := []float64{ceiling}
	for _, f := range p.rects {
		if f.bottom > ceiling {
			candidates = append(candidates, f.bottom)
		}
	}
	slices.Sort(candidates)

	out := floats.Placement{Side: r.Side, Size: r.Size}
	for _, y := range slices.Compact(candidates) {
		out.Probes++
		left, right := p.window(y, r.Size.Block)
		if left+right+r.Size.Inline > p.inlineSize {
			continue
		}
		var extent float64
		if r.Side == floats.Left {
			extent = left + r.Size.Inline
			out.Origin = floats.Origin{X: left, Y: y}
		} else {
			extent = right + r.Size.Inline
			out.Origin = floats.Origin{X: p.inlineSize - extent, Y: y}
		}
		out.AvailableInlineSize = p.inlineSize - left - right
		if r.Size.Block > 0 && extent > 0 {
			p.rects = append(p.rects, rect{side: r.Side, top: y, bottom: y + r.Size.Block, extent: extent})
		}
		return out
	}
	// The last candidate lies below every float, where the window is empty.
	panic(errors.New(errors.ErrCodeInternal, "no position found for %v", r))
}

// window returns the largest left and right extents of the floats that
// intersect [y, y+h), or that contain y when h is zero.
func (p *Placer) window(y, h float64) (left, right float64) {
	for _, f := range p.rects {
		if f.bottom <= y || (f.top >= y+h && f.top > y) {
			continue
		}
		if f.side == floats.Left {
			left = max(left, f.extent)
		} else {
			right = max(right, f.extent)
		}
	}
	return left, right
}

// Clearance returns the lowest bottom edge of the floats on the cleared
// sides.
func (p *Placer) Clearance(clear floats.Clear) float64 {
	errors.Must(clear.Validate())
	return p.lowest(clear.Sides())
}

func (p *Placer) lowest(sides []floats.Side) float64 {
	edge := 0.0
	for _, f := range p.rects {
		if slices.Contains(sides, f.side) {
			edge = max(edge, f.bottom)
		}
	}
	return edge
}

// Len returns the number of floats that take up space.
func (p *Placer) Len() int { return len(p.rects) }
