package floats_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/floats"
	"github.com/matzehuels/floatzone/pkg/floats/naive"
	"github.com/matzehuels/floatzone/pkg/observability"
)

type placed struct {
	side   floats.Side
	origin floats.Origin
	size   floats.Size
}

func TestAddFloat(t *testing.T) {
	fc := floats.New(200)

	steps := []struct {
		side floats.Side
		size floats.Size
		want floats.Origin
	}{
		{floats.Left, floats.Size{Inline: 50, Block: 50}, floats.Origin{X: 0, Y: 0}},
		{floats.Right, floats.Size{Inline: 60, Block: 50}, floats.Origin{X: 140, Y: 0}},
		{floats.Left, floats.Size{Inline: 100, Block: 50}, floats.Origin{X: 0, Y: 50}},
	}
	for i, s := range steps {
		if got := fc.AddFloat(s.side, s.size, 0, floats.ClearNone); got != s.want {
			t.Fatalf("float %d: AddFloat() = %v, want %v", i, got, s.want)
		}
	}

	clearances := []struct {
		clear floats.Clear
		want  float64
	}{
		{floats.ClearNone, 0},
		{floats.ClearLeft, 100},
		{floats.ClearRight, 50},
		{floats.ClearBoth, 100},
	}
	for _, c := range clearances {
		if got := fc.Clearance(c.clear); got != c.want {
			t.Errorf("Clearance(%v) = %v, want %v", c.clear, got, c.want)
		}
	}

	want := []bands.Band{
		{Top: 0, Bottom: 50, Left: 50, Right: 60},
		{Top: 50, Bottom: 100, Left: 100},
		{Top: 100, Bottom: math.Inf(1)},
	}
	if diff := cmp.Diff(want, fc.Bands()); diff != "" {
		t.Errorf("bands mismatch (-want +got):\n%s", diff)
	}
	if fc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", fc.Len())
	}
}

func TestPlace(t *testing.T) {
	fc := floats.New(200)
	fc.AddFloat(floats.Left, floats.Size{Inline: 50, Block: 50}, 0, floats.ClearNone)
	fc.AddFloat(floats.Right, floats.Size{Inline: 60, Block: 50}, 0, floats.ClearNone)

	got := fc.Place(floats.Request{Side: floats.Left, Size: floats.Size{Inline: 100, Block: 50}})
	want := floats.Placement{
		Origin:              floats.Origin{X: 0, Y: 50},
		Side:                floats.Left,
		Size:                floats.Size{Inline: 100, Block: 50},
		AvailableInlineSize: 200,
		Probes:              2,
		Bands:               2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Place() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceHonoursCeilingAndClear(t *testing.T) {
	tests := []struct {
		name string
		req  floats.Request
		want floats.Origin
	}{
		{
			name: "ceiling inside the left float",
			req:  floats.Request{Side: floats.Left, Size: floats.Size{Inline: 10, Block: 10}, Ceiling: 20},
			want: floats.Origin{X: 50, Y: 20},
		},
		{
			name: "clear left drops below the left float",
			req:  floats.Request{Side: floats.Right, Size: floats.Size{Inline: 10, Block: 10}, Clear: floats.ClearLeft},
			want: floats.Origin{X: 190, Y: 40},
		},
		{
			name: "clear right drops below the right float",
			req:  floats.Request{Side: floats.Left, Size: floats.Size{Inline: 10, Block: 10}, Clear: floats.ClearRight},
			want: floats.Origin{X: 50, Y: 30},
		},
		{
			name: "ceiling below every float",
			req:  floats.Request{Side: floats.Right, Size: floats.Size{Inline: 200, Block: 10}, Ceiling: 70, Clear: floats.ClearBoth},
			want: floats.Origin{X: 0, Y: 70},
		},
		{
			name: "too wide beside the floats",
			req:  floats.Request{Side: floats.Right, Size: floats.Size{Inline: 150, Block: 5}},
			want: floats.Origin{X: 50, Y: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := floats.New(200)
			fc.AddFloat(floats.Left, floats.Size{Inline: 50, Block: 40}, 0, floats.ClearNone)
			fc.AddFloat(floats.Right, floats.Size{Inline: 30, Block: 30}, 0, floats.ClearNone)

			if got := fc.Place(tt.req).Origin; got != tt.want {
				t.Errorf("Place() origin = %v, want %v", got, tt.want)
			}
			if err := fc.Check(); err != nil {
				t.Errorf("Check() = %v", err)
			}
		})
	}
}

func TestZeroSizedFloats(t *testing.T) {
	fc := floats.New(100)
	fc.AddFloat(floats.Left, floats.Size{Inline: 40, Block: 20}, 0, floats.ClearNone)

	if got := fc.AddFloat(floats.Left, floats.Size{Inline: 30, Block: 0}, 0, floats.ClearNone); got != (floats.Origin{X: 40, Y: 0}) {
		t.Errorf("zero-height float origin = %v, want (40, 0)", got)
	}
	if got := fc.AddFloat(floats.Right, floats.Size{Inline: 0, Block: 30}, 0, floats.ClearNone); got != (floats.Origin{X: 100, Y: 0}) {
		t.Errorf("zero-width float origin = %v, want (100, 0)", got)
	}
	if got := fc.Clearance(floats.ClearRight); got != 0 {
		t.Errorf("Clearance(right) = %v, want 0", got)
	}
	if got := fc.Clearance(floats.ClearLeft); got != 20 {
		t.Errorf("Clearance(left) = %v, want 20", got)
	}
}

// TestRespectOrder reproduces the CSS 2.1 test c414-flt-fit-002: ten 70×20
// floats in a 200 wide block, each no higher than the one before it.
func TestRespectOrder(t *testing.T) {
	sides := []floats.Side{
		floats.Left, floats.Left, floats.Left, floats.Right, floats.Left,
		floats.Right, floats.Right, floats.Left, floats.Left, floats.Left,
	}
	want := []floats.Origin{
		{X: 0, Y: 0}, {X: 70, Y: 0}, {X: 0, Y: 20}, {X: 130, Y: 20}, {X: 0, Y: 40},
		{X: 130, Y: 40}, {X: 130, Y: 60}, {X: 0, Y: 60}, {X: 0, Y: 80}, {X: 70, Y: 80},
	}

	fc := floats.New(200)
	var got []floats.Origin
	ceiling := 0.0
	for _, side := range sides {
		o := fc.AddFloat(side, floats.Size{Inline: 70, Block: 20}, ceiling, floats.ClearNone)
		got = append(got, o)
		ceiling = o.Y
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacePanicsOnInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  floats.Request
		code errors.Code
	}{
		{"negative width", floats.Request{Size: floats.Size{Inline: -1, Block: 1}}, errors.ErrCodeInvalidSize},
		{"NaN height", floats.Request{Size: floats.Size{Inline: 1, Block: math.NaN()}}, errors.ErrCodeInvalidSize},
		{"infinite height", floats.Request{Size: floats.Size{Inline: 1, Block: math.Inf(1)}}, errors.ErrCodeInvalidSize},
		{"negative ceiling", floats.Request{Size: floats.Size{Inline: 1, Block: 1}, Ceiling: -5}, errors.ErrCodeInvalidCeiling},
		{"wider than block", floats.Request{Size: floats.Size{Inline: 101, Block: 1}}, errors.ErrCodeFloatTooWide},
		{"unknown side", floats.Request{Side: 2, Size: floats.Size{Inline: 1, Block: 1}}, errors.ErrCodeInvalidSide},
		{"unknown clear", floats.Request{Size: floats.Size{Inline: 1, Block: 1}, Clear: 9}, errors.ErrCodeInvalidSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := floats.New(100)
			if err := tt.req.Validate(fc.InlineSize()); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, tt.code) {
					t.Errorf("recovered %v, want code %v", err, tt.code)
				}
				if fc.Len() != 0 || len(fc.Bands()) != 1 {
					t.Errorf("context changed before panic:\n%v", fc)
				}
			}()
			fc.Place(tt.req)
		})
	}
}

func TestNewPanicsOnInvalidWidth(t *testing.T) {
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if err, _ := recover().(error); !errors.Is(err, errors.ErrCodeInvalidSize) {
					t.Errorf("New(%v) recovered %v, want %v", w, err, errors.ErrCodeInvalidSize)
				}
			}()
			floats.New(w)
		}()
	}
}

func TestClearText(t *testing.T) {
	for _, c := range []floats.Clear{floats.ClearNone, floats.ClearLeft, floats.ClearRight, floats.ClearBoth} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", c, err)
		}
		var got floats.Clear
		if err := got.UnmarshalText(text); err != nil || got != c {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, c)
		}
	}

	var c floats.Clear
	if err := c.UnmarshalText([]byte("BOTH")); err != nil || c != floats.ClearBoth {
		t.Errorf("UnmarshalText(BOTH) = %v, %v", c, err)
	}
	if err := c.UnmarshalText(nil); err != nil || c != floats.ClearNone {
		t.Errorf("UnmarshalText(empty) = %v, %v", c, err)
	}
	if err := c.UnmarshalText([]byte("inline-start")); !errors.Is(err, errors.ErrCodeInvalidSide) {
		t.Errorf("UnmarshalText(inline-start) error = %v", err)
	}
}

type countingHooks struct {
	observability.NoopPlacementHooks
	placed, cleared int
}

func (h *countingHooks) OnFloatPlaced(string, float64, float64, int, int) { h.placed++ }
func (h *countingHooks) OnClearance(string, float64)                      { h.cleared++ }

func TestPlacementHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetPlacementHooks(hooks)
	defer observability.Reset()

	fc := floats.New(100)
	fc.AddFloat(floats.Left, floats.Size{Inline: 10, Block: 10}, 0, floats.ClearNone)
	fc.AddFloat(floats.Right, floats.Size{Inline: 10, Block: 10}, 0, floats.ClearLeft)
	fc.Clearance(floats.ClearBoth)

	if hooks.placed != 2 || hooks.cleared != 1 {
		t.Errorf("hooks saw %d placements and %d clearances, want 2 and 1", hooks.placed, hooks.cleared)
	}
}

func randomRequest(r *rand.Rand, width int, ceiling float64) floats.Request {
	req := floats.Request{
		Side:    floats.Side(r.IntN(2)),
		Size:    floats.Size{Inline: float64(r.IntN(width + 1)), Block: float64(r.IntN(40))},
		Ceiling: ceiling,
	}
	if r.IntN(4) == 0 {
		req.Clear = floats.Clear(r.IntN(4))
	}
	return req
}

// TestInvariants places random floats and checks after every one that the
// band map is well formed and that no two floats overlap.
func TestInvariants(t *testing.T) {
	const width = 300
	r := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		fc := floats.New(width)
		var all []placed
		for i := range 150 {
			req := randomRequest(r, width/2, float64(r.IntN(200)))
			floor := max(req.Ceiling, fc.Clearance(req.Clear))
			o := fc.AddFloat(req.Side, req.Size, req.Ceiling, req.Clear)
			f := placed{req.Side, o, req.Size}

			if err := fc.Check(); err != nil {
				t.Fatalf("round %d float %d: Check() = %v", round, i, err)
			}
			if o.Y < floor {
				t.Fatalf("round %d float %d: %v placed above %v", round, i, o, floor)
			}
			if o.X < 0 || o.X+req.Size.Inline > width {
				t.Fatalf("round %d float %d: %v sticks out of the block", round, i, o)
			}
			for _, g := range all {
				if overlaps(f, g) {
					t.Fatalf("round %d float %d: %+v overlaps %+v", round, i, f, g)
				}
			}
			all = append(all, f)
		}
	}
}

func overlaps(a, b placed) bool {
	if a.size.Inline == 0 || a.size.Block == 0 || b.size.Inline == 0 || b.size.Block == 0 {
		return false
	}
	return a.origin.X < b.origin.X+b.size.Inline && b.origin.X < a.origin.X+a.size.Inline &&
		a.origin.Y < b.origin.Y+b.size.Block && b.origin.Y < a.origin.Y+a.size.Block
}

// TestMatchesNaive compares every placement and clearance against the
// brute-force placer, which tries every candidate position.
func TestMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for round := range 50 {
		width := 50 + r.IntN(400)
		fc := floats.New(float64(width))
		ref := naive.New(float64(width))
		ceiling := 0.0
		for i := range 120 {
			req := randomRequest(r, width, ceiling)
			want := ref.Place(req)
			got := fc.Place(req)
			if got.Origin != want.Origin {
				t.Fatalf("round %d (width %d) float %d %+v: origin %v, naive %v\n%v",
					round, width, i, req, got.Origin, want.Origin, fc)
			}
			if got.AvailableInlineSize != want.AvailableInlineSize {
				t.Fatalf("round %d float %d: available %v, naive %v", round, i, got.AvailableInlineSize, want.AvailableInlineSize)
			}
			// Keep later floats near earlier ones so they interact.
			if r.IntN(3) == 0 {
				ceiling = got.Origin.Y
			}
		}
		for c := floats.ClearNone; c <= floats.ClearBoth; c++ {
			if got, want := fc.Clearance(c), ref.Clearance(c); got != want {
				t.Errorf("round %d: Clearance(%v) = %v, naive %v", round, c, got, want)
			}
		}
	}
}
