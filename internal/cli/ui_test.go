package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/floats"
	"github.com/matzehuels/floatzone/pkg/scenario"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{12.5, "12.5"},
		{math.Inf(1), "∞"},
	}
	for _, tt := range tests {
		if got := formatLength(tt.in); got != tt.want {
			t.Errorf("formatLength(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlacementsTable(t *testing.T) {
	placed := []scenario.Placed{
		{Label: "nav", Placement: floats.Placement{Side: floats.Left, Size: floats.Size{Inline: 50, Block: 20}, Probes: 1}},
		{Label: "aside", Placement: floats.Placement{Side: floats.Right, Origin: floats.Origin{X: 140}, Size: floats.Size{Inline: 60, Block: 20}, Probes: 1}},
	}
	out := placementsTable(placed, 0)
	for _, want := range []string{"Float", "nav", "aside", "right", "50×20", "140"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}
}

func TestBandsTable(t *testing.T) {
	out := bandsTable([]bands.Band{
		{Top: 0, Bottom: 50, Left: 50, Right: 60},
		{Top: 50, Bottom: math.Inf(1)},
	})
	for _, want := range []string{"Bottom", "60", "∞"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}
}
