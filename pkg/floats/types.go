package floats

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/errors"
)

// Side is the edge of the containing block a float is attached to.
type Side = bands.Side

const (
	Left  = bands.Left
	Right = bands.Right
)

// Clear selects the sides whose floats a box must be placed below.
type Clear int

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

var clearNames = [...]string{"none", "left", "right", "both"}

// Sides returns the sides c clears.
func (c Clear) Sides() []Side {
	switch c {
	case ClearLeft:
		return []Side{Left}
	case ClearRight:
		return []Side{Right}
	case ClearBoth:
		return []Side{Left, Right}
	default:
		return nil
	}
}

func (c Clear) String() string {
	if c < ClearNone || c > ClearBoth {
		return fmt.Sprintf("Clear(%d)", int(c))
	}
	return clearNames[c]
}

// Validate reports whether c is one of the four clear values.
func (c Clear) Validate() error {
	if c < ClearNone || c > ClearBoth {
		return errors.New(errors.ErrCodeInvalidSide, "unknown clear value %d", int(c))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Clear) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "none",
// "left", "right" and "both" in any case; empty text means none.
func (c *Clear) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		*c = ClearNone
		return nil
	}
	for i, name := range clearNames {
		if s == name {
			*c = Clear(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidSide, "unknown clear value %q (want none, left, right or both)", text)
}

// Size is the margin box size of a float.
type Size struct {
	Inline float64 `json:"inline"`
	Block  float64 `json:"block"`
}

// Origin is the top-left corner of a placed float's margin box, relative to
// the containing block's content edge.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (o Origin) String() string { return fmt.Sprintf("(%g, %g)", o.X, o.Y) }

// Request describes one float to place.
type Request struct {
	Side    Side
	Size    Size
	Ceiling float64 // highest block position the float may take
	Clear   Clear
}

// Validate checks r against a containing block of the given inline size.
// It returns the error Place would panic with.
func (r Request) Validate(inlineSize float64) error {
	if err := r.Side.Validate(); err != nil {
		return err
	}
	if err := r.Clear.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateLength(errors.ErrCodeInvalidSize, "float inline size", r.Size.Inline); err != nil {
		return err
	}
	if err := errors.ValidateLength(errors.ErrCodeInvalidSize, "float block size", r.Size.Block); err != nil {
		return err
	}
	if err := errors.ValidateLength(errors.ErrCodeInvalidCeiling, "ceiling", r.Ceiling); err != nil {
		return err
	}
	return errors.ValidateFit(r.Size.Inline, inlineSize)
}

// Placement is the outcome of placing one float.
type Placement struct {
	Origin Origin `json:"origin"`
	Side   Side   `json:"side"`
	Size   Size   `json:"size"`

	// AvailableInlineSize is the space left between the floats on either
	// side over the accepted window, before this float was added.
	AvailableInlineSize float64 `json:"available_inline_size"`

	// Probes counts the windows tried, Bands the bands examined by them.
	Probes int `json:"probes"`
	Bands  int `json:"bands"`
}
