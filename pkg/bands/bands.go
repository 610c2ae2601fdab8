package bands

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/splay"
)

// Side names the edge of the containing block a float is attached to.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Validate reports whether s is Left or Right.
func (s Side) Validate() error {
	if s != Left && s != Right {
		return errors.New(errors.ErrCodeInvalidSide, "unknown side %d", int(s))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "left" and
// "right" in any case.
func (s *Side) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return errors.New(errors.ErrCodeInvalidSide, "unknown side %q (want left or right)", text)
	}
	return nil
}

// Band is a maximal interval [Top, Bottom) of the block axis over which the
// inline space occupied from the left edge (Left) and from the right edge
// (Right) is constant. Bottom is +Inf for the last band.
type Band struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Get returns the extent occupied from the given side.
func (b Band) Get(side Side) float64 {
	if side == Right {
		return b.Right
	}
	return b.Left
}

// Unbounded reports whether b extends to infinity.
func (b Band) Unbounded() bool { return math.IsInf(b.Bottom, 1) }

// Free returns the inline space left between the two sides' extents in a
// containing block of the given inline size.
func (b Band) Free(containing float64) float64 {
	return containing - b.Left - b.Right
}

// String formats the band as "[top, bottom) left=L right=R".
func (b Band) String() string {
	return fmt.Sprintf("[%g, %g) left=%g right=%g", b.Top, b.Bottom, b.Left, b.Right)
}

type bandJSON struct {
	Top    float64  `json:"top"`
	Bottom *float64 `json:"bottom"`
	Left   float64  `json:"left"`
	Right  float64  `json:"right"`
}

// MarshalJSON encodes the band, writing an unbounded bottom as null.
func (b Band) MarshalJSON() ([]byte, error) {
	out := bandJSON{Top: b.Top, Left: b.Left, Right: b.Right}
	if !b.Unbounded() {
		out.Bottom = &b.Bottom
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a band written by MarshalJSON.
func (b *Band) UnmarshalJSON(data []byte) error {
	var in bandJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = Band{Top: in.Top, Bottom: math.Inf(1), Left: in.Left, Right: in.Right}
	if in.Bottom != nil {
		b.Bottom = *in.Bottom
	}
	return nil
}

// extents is the value stored per band; the band's top is the tree key.
type extents struct {
	left, right float64
	bottom      float64
}

func (e extents) get(side Side) float64 {
	if side == Right {
		return e.right
	}
	return e.left
}

func (e *extents) set(side Side, v float64) {
	if side == Right {
		e.right = v
	} else {
		e.left = v
	}
}

func (e extents) sameAs(o extents) bool {
	return e.left == o.left && e.right == o.right
}

// Map is the band partition of one containing block.
//
// The zero value is not usable; create maps with New.
type Map struct {
	tree   splay.Tree[float64, extents]
	lowest [2]float64
}

// New returns a map holding the single unoccupied band [0, +Inf).
func New() *Map {
	m := &Map{}
	m.tree.Insert(0, extents{bottom: math.Inf(1)})
	return m
}

// At returns the band containing y.
func (m *Map) At(y float64) Band {
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidInput, "position", y))
	top, e, _ := m.tree.Floor(y)
	return Band{Top: top, Bottom: e.bottom, Left: e.left, Right: e.right}
}

// split makes y a band boundary. A band straddling y is cut in two halves
// with identical extents.
func (m *Map) split(y float64) {
	top, e, _ := m.tree.Floor(y)
	if top == y {
		return
	}
	upper := e
	upper.bottom = y
	m.tree.Insert(top, upper)
	m.tree.Insert(y, e)
}

// Occupy records that, on the given side, at least extent of inline space is
// taken over [top, bottom). Bands inside the range keep the larger of their
// current extent and extent; equal neighbours are merged afterwards.
//
// Occupy panics with an *errors.Error if the range is negative, inverted or
// unbounded, or if extent is negative. An empty range or a zero extent
// changes nothing.
func (m *Map) Occupy(side Side, top, bottom, extent float64) {
	errors.Must(side.Validate())
	errors.Must(errors.ValidateRange(top, bottom))
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "extent", extent))
	if top == bottom || extent == 0 {
		return
	}

	m.split(top)
	m.split(bottom)
	for y := top; y < bottom; {
		e, _ := m.tree.Get(y)
		if extent > e.get(side) {
			e.set(side, extent)
			m.tree.Insert(y, e)
		}
		y = e.bottom
	}
	m.lowest[side] = max(m.lowest[side], bottom)
	m.coalesce(top, bottom)
}

// coalesce merges equal neighbours from the band above top down to the band
// starting at bottom.
func (m *Map) coalesce(top, bottom float64) {
	cur := top
	if k, _, ok := m.tree.Lower(top); ok {
		cur = k
	}
	e, _ := m.tree.Get(cur)
	for e.bottom <= bottom {
		next, _ := m.tree.Get(e.bottom)
		if next.sameAs(e) {
			m.tree.Remove(e.bottom)
			e.bottom = next.bottom
			m.tree.Insert(cur, e)
			continue
		}
		cur, e = e.bottom, next
	}
}

// Window is the outcome of probing one candidate position for a float.
type Window struct {
	// Top is the probed block position.
	Top float64
	// Left and Right are the largest extents over the bands the probe
	// examined. When the probe succeeds they cover the float's whole span.
	Left, Right float64
	// Bands is the number of bands the probe examined.
	Bands int
	// Next is the smallest position worth probing after a failed probe.
	// It is zero when the probe succeeds.
	Next float64
}

// QueryWindow tests whether a float of the given size fits at block position
// y, next to the floats already recorded, inside a containing block of the
// given inline size. The float fits when, over every band it would cross,
// the largest left extent plus the largest right extent plus inlineSize
// does not exceed containing. A float with a zero block size only looks at
// the band containing y.
//
// When the float does not fit, Window.Next is the bottom of the first band
// that is too narrow on its own, or else the bottom of the band containing
// y: no position below Next can succeed. Band boundaries and the unbounded,
// unoccupied last band guarantee that repeated probing terminates.
//
// QueryWindow panics with an *errors.Error on negative or non-finite input,
// or when inlineSize exceeds containing.
func (m *Map) QueryWindow(y, blockSize, inlineSize, containing float64) (Window, bool) {
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidCeiling, "position", y))
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "block size", blockSize))
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "inline size", inlineSize))
	errors.Must(errors.ValidateLength(errors.ErrCodeInvalidSize, "containing inline size", containing))
	errors.Must(errors.ValidateFit(inlineSize, containing))

	w := Window{Top: y}
	_, e, _ := m.tree.Floor(y)
	first := e.bottom
	end := y + blockSize
	for {
		w.Bands++
		w.Left = max(w.Left, e.left)
		w.Right = max(w.Right, e.right)
		if e.left+e.right+inlineSize > containing {
			w.Next = e.bottom
			return w, false
		}
		if w.Left+w.Right+inlineSize > containing {
			w.Next = first
			return w, false
		}
		if e.bottom >= end {
			return w, true
		}
		e, _ = m.tree.Get(e.bottom)
	}
}

// LowestEdge returns the largest band bottom among bands occupied on any of
// the given sides, or 0 when there are none.
func (m *Map) LowestEdge(sides ...Side) float64 {
	edge := 0.0
	for _, s := range sides {
		errors.Must(s.Validate())
		edge = max(edge, m.lowest[s])
	}
	return edge
}

// Bands returns a snapshot of every band in ascending order.
func (m *Map) Bands() []Band {
	out := make([]Band, 0, 8)
	for top, e := range m.tree.All() {
		out = append(out, Band{Top: top, Bottom: e.bottom, Left: e.left, Right: e.right})
	}
	return out
}

// Len returns the number of bands.
func (m *Map) Len() int { return m.tree.Len() }

// Work returns the number of tree nodes visited so far; see splay.Tree.Work.
func (m *Map) Work() int { return m.tree.Work() }

// Check verifies the partition invariants and returns an
// errors.ErrCodeCorruptBands error describing the first violation.
func (m *Map) Check() error {
	bands := m.Bands()
	if len(bands) == 0 {
		return errors.New(errors.ErrCodeCorruptBands, "map has no bands")
	}
	if bands[0].Top != 0 {
		return errors.New(errors.ErrCodeCorruptBands, "first band starts at %g, not 0", bands[0].Top)
	}
	lowest := [2]float64{}
	for i, b := range bands {
		if b.Bottom <= b.Top {
			return errors.New(errors.ErrCodeCorruptBands, "band %d %v is empty", i, b)
		}
		if b.Left < 0 || b.Right < 0 {
			return errors.New(errors.ErrCodeCorruptBands, "band %d %v has a negative extent", i, b)
		}
		if i > 0 {
			prev := bands[i-1]
			if prev.Bottom != b.Top {
				return errors.New(errors.ErrCodeCorruptBands, "band %d %v does not follow %v", i, b, prev)
			}
			if prev.Left == b.Left && prev.Right == b.Right {
				return errors.New(errors.ErrCodeCorruptBands, "bands %v and %v should have been merged", prev, b)
			}
		}
		if b.Left > 0 {
			lowest[Left] = b.Bottom
		}
		if b.Right > 0 {
			lowest[Right] = b.Bottom
		}
	}
	last := bands[len(bands)-1]
	if !last.Unbounded() || last.Left != 0 || last.Right != 0 {
		return errors.New(errors.ErrCodeCorruptBands, "last band %v must be unbounded and unoccupied", last)
	}
	if lowest != m.lowest {
		return errors.New(errors.ErrCodeCorruptBands, "cached lowest edges %v disagree with bands %v", m.lowest, lowest)
	}
	return nil
}

// String dumps the bands one per line.
func (m *Map) String() string {
	bands := m.Bands()
	var b strings.Builder
	fmt.Fprintf(&b, "bands(%d):\n", len(bands))
	for _, band := range bands {
		fmt.Fprintf(&b, "    %v\n", band)
	}
	return b.String()
}
