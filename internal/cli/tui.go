package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/floatzone/pkg/scenario"
)

var (
	inspectDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	inspectWarnStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// InspectModel - Step through a scenario run
// =============================================================================

// InspectModel is the bubbletea model for stepping through the floats of a
// scenario run. Step is the index of the last placed float shown.
type InspectModel struct {
	Result *scenario.Result
	Step   int
}

// NewInspectModel creates a model showing the first float of res. res must
// have been produced by a runner with KeepSteps set.
func NewInspectModel(res *scenario.Result) InspectModel {
	return InspectModel{Result: res}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := len(m.Result.Placements) - 1
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Step > 0 {
				m.Step--
			}
		case "right", "l", "down", "j", " ":
			if m.Step < last {
				m.Step++
			}
		case "home", "g":
			m.Step = 0
		case "end", "G":
			m.Step = max(last, 0)
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Result.Name))
	b.WriteString(inspectDimStyle.Render(fmt.Sprintf("  inline size %s", formatLength(m.Result.InlineSize))))
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Result.Placements) == 0 {
		b.WriteString(inspectDimStyle.Render("no floats"))
		b.WriteString("\n")
		return b.String()
	}

	p := m.Result.Placements[m.Step]
	b.WriteString(fmt.Sprintf("float %d/%d  %s %s at %v  %s\n\n",
		m.Step+1, len(m.Result.Placements), p.Label, p.Side, p.Origin,
		inspectDimStyle.Render(fmt.Sprintf("%d probes, %d bands examined, %s free",
			p.Probes, p.Bands, formatLength(p.AvailableInlineSize)))))

	left := placementsTable(m.Result.Placements, m.Step)
	right := bandsTable(m.Result.Steps[m.Step])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n")

	for _, mm := range m.Result.Mismatches {
		b.WriteString(inspectWarnStyle.Render(iconWarning + " " + mm))
		b.WriteString("\n")
	}
	return b.String()
}
