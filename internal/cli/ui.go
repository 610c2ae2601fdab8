package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/scenario"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder    = lipgloss.NewStyle().Foreground(colorDim)
	styleLeft      = lipgloss.NewStyle().Foreground(colorCyan)
	styleRight     = lipgloss.NewStyle().Foreground(colorGreen)
	styleCurrent   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	stylePending   = lipgloss.NewStyle().Foreground(colorDim)
	styleUnbounded = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints run statistics on a single line.
func printStats(s scenario.Stats) {
	parts := []string{
		fmt.Sprintf("%d floats", s.Floats),
		fmt.Sprintf("%d bands", s.Bands),
		fmt.Sprintf("%d probes", s.Probes),
		s.Duration.String(),
	}
	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Tables
// =============================================================================

// formatLength formats a length, writing +Inf as "∞".
func formatLength(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// placementsTable renders placed floats. Rows after current are dimmed;
// current < 0 highlights nothing.
func placementsTable(placed []scenario.Placed, current int) string {
	rows := make([][]string, len(placed))
	for i, p := range placed {
		rows[i] = []string{
			p.Label,
			p.Side.String(),
			formatLength(p.Size.Inline) + "×" + formatLength(p.Size.Block),
			formatLength(p.Origin.X),
			formatLength(p.Origin.Y),
			strconv.Itoa(p.Probes),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Float", "Side", "Size", "X", "Y", "Probes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case current >= 0 && row == current:
				return styleCurrent
			case current >= 0 && row > current:
				return stylePending
			case col == 1 && placed[row].Side == bands.Right:
				return styleRight
			case col == 1:
				return styleLeft
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// bandsTable renders a band map snapshot.
func bandsTable(bs []bands.Band) string {
	rows := make([][]string, len(bs))
	for i, b := range bs {
		rows[i] = []string{
			formatLength(b.Top),
			formatLength(b.Bottom),
			formatLength(b.Left),
			formatLength(b.Right),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Top", "Bottom", "Left", "Right").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case bs[row].Unbounded():
				return styleUnbounded
			case col == 2 && bs[row].Left > 0:
				return styleLeft
			case col == 3 && bs[row].Right > 0:
				return styleRight
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
