package floats

import (
	"fmt"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/observability"
)

// Context holds the floats of one block formatting context.
type Context struct {
	inlineSize float64
	bands      *bands.Map
	placed     int
}

// New returns an empty context for a containing block of the given inline
// size. It panics with an *errors.Error if inlineSize is negative or not
// finite.
func New(inlineSize float64) *Context {
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "containing block inline size", inlineSize))
	return &Context{inlineSize: inlineSize, bands: bands.New()}
}

// InlineSize returns the containing block's inline size.
func (c *Context) InlineSize() float64 { return c.inlineSize }

// Len returns the number of floats placed so far.
func (c *Context) Len() int { return c.placed }

// AddFloat places a float of the given size on side, no higher than ceiling
// and below any floats cleared by clear, and returns its origin.
func (c *Context) AddFloat(side Side, size Size, ceiling float64, clear Clear) Origin {
	return c.Place(Request{Side: side, Size: size, Ceiling: ceiling, Clear: clear}).Origin
}

// Place is AddFloat with the full placement report.
//
// Place panics with the error r.Validate returns, before modifying the
// context.
func (c *Context) Place(r Request) Placement {
	errors.Must(r.Validate(c.inlineSize))

	y := max(r.Ceiling, c.bands.LowestEdge(r.Clear.Sides()...))
	p := Placement{Side: r.Side, Size: r.Size}
	var w bands.Window
	for {
		var ok bool
		w, ok = c.bands.QueryWindow(y, r.Size.Block, r.Size.Inline, c.inlineSize)
		p.Probes++
		p.Bands += w.Bands
		if ok {
			break
		}
		y = w.Next
	}

	var extent float64
	if r.Side == Left {
		extent = w.Left + r.Size.Inline
		p.Origin = Origin{X: w.Left, Y: y}
	} else {
		extent = w.Right + r.Size.Inline
		p.Origin = Origin{X: c.inlineSize - extent, Y: y}
	}
	p.AvailableInlineSize = c.inlineSize - w.Left - w.Right
	c.bands.Occupy(r.Side, y, y+r.Size.Block, extent)
	c.placed++

	observability.Placement().OnFloatPlaced(r.Side.String(), p.Origin.X, p.Origin.Y, p.Probes, p.Bands)
	return p
}

// Clearance returns the block position a box clearing the given sides must
// start at: the lowest bottom edge of the floats on those sides, or 0.
func (c *Context) Clearance(clear Clear) float64 {
	errors.Must(clear.Validate())
	edge := c.bands.LowestEdge(clear.Sides()...)
	observability.Placement().OnClearance(clear.String(), edge)
	return edge
}

// Bands returns a snapshot of the context's band map.
func (c *Context) Bands() []bands.Band { return c.bands.Bands() }

// Check verifies the band map's invariants.
func (c *Context) Check() error { return c.bands.Check() }

// Work returns the number of band tree nodes visited so far.
func (c *Context) Work() int { return c.bands.Work() }

func (c *Context) String() string {
	return fmt.Sprintf("floats.Context{inline=%g floats=%d}\n%v", c.inlineSize, c.placed, c.bands)
}
