package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive coordinate explorer.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := pipeline.Options{
		AgeMonths:    24,
		Sex:          "m",
		NasionInion:  32,
		Preauricular: 28,
	}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Explore electrode positions interactively",
		Long: `Explore electrode positions interactively.

The inspect command opens a terminal UI where the head measurements can be
adjusted live while the coordinate table updates. This is useful for seeing
how the anterior shift and spacing compression respond to age, and for
dialing in measurements before rendering.

Flags set the starting measurements; all of them can be changed in the UI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newInspectModel(opts)
			if m.err != nil {
				return m.err
			}
			p := tea.NewProgram(m)
			_, err := p.Run()
			return err
		},
	}

	subjectFlags(cmd, &opts)

	return cmd
}

// =============================================================================
// inspectModel - Live measurement explorer
// =============================================================================

// inspectParams enumerates the adjustable fields, in display order.
var inspectParams = []string{"Age", "Sex", "Nasion-inion", "Preauricular", "Age spacing"}

// inspectModel is the bubbletea model for the inspect command.
type inspectModel struct {
	opts   pipeline.Options
	cursor int
	doc    layout.Document
	err    error
	status string
}

// newInspectModel builds the model and computes the initial layout.
func newInspectModel(opts pipeline.Options) inspectModel {
	m := inspectModel{opts: opts}
	m.recompute()
	return m
}

// recompute refreshes the layout from the current measurements.
// Validation errors are kept on the model and shown instead of the table.
func (m *inspectModel) recompute() {
	sub, err := m.opts.Subject()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.doc = layout.FromMontage(m.opts.Model().Compute(sub))
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(inspectParams)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(+1)
	case "enter", " ":
		m.toggle()
	case "s":
		m.save()
	}
	return m, nil
}

// adjust nudges the selected measurement. Age moves by one month,
// distances by half a centimeter; sex and age-spacing flip.
func (m *inspectModel) adjust(dir float64) {
	switch m.cursor {
	case 0:
		m.opts.AgeMonths += dir
		if m.opts.AgeMonths < 0 {
			m.opts.AgeMonths = 0
		}
	case 1:
		m.toggleSex()
	case 2:
		m.opts.NasionInion += dir * 0.5
		if m.opts.NasionInion < 1 {
			m.opts.NasionInion = 1
		}
	case 3:
		m.opts.Preauricular += dir * 0.5
		if m.opts.Preauricular < 1 {
			m.opts.Preauricular = 1
		}
	case 4:
		m.opts.AgeSpacing = !m.opts.AgeSpacing
	}
	m.status = ""
	m.recompute()
}

// toggle flips the boolean-like fields when enter/space is pressed.
func (m *inspectModel) toggle() {
	switch m.cursor {
	case 1:
		m.toggleSex()
	case 4:
		m.opts.AgeSpacing = !m.opts.AgeSpacing
	default:
		return
	}
	m.status = ""
	m.recompute()
}

func (m *inspectModel) toggleSex() {
	if strings.EqualFold(strings.TrimSpace(m.opts.Sex), "f") ||
		strings.EqualFold(strings.TrimSpace(m.opts.Sex), "female") {
		m.opts.Sex = "m"
	} else {
		m.opts.Sex = "f"
	}
}

// save writes the current layout next to the working directory.
func (m *inspectModel) save() {
	if m.err != nil {
		return
	}
	path := appName + "-layout.json"
	if err := layout.ExportJSON(m.doc, path); err != nil {
		m.status = StyleWarning.Render("save failed: " + err.Error())
		return
	}
	m.status = StyleSuccess.Render("saved " + path)
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Electrode Inspector"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ adjust  ⏎ toggle  s save  q quit"))
	b.WriteString("\n\n")

	values := []string{
		fmt.Sprintf("%.0f months", m.opts.AgeMonths),
		m.opts.Sex,
		fmt.Sprintf("%.1f cm", m.opts.NasionInion),
		fmt.Sprintf("%.1f cm", m.opts.Preauricular),
		onOff(m.opts.AgeSpacing),
	}
	for i, name := range inspectParams {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, name, values[i])
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(listDimStyle.Render(fmt.Sprintf("spacing %.3f · front shift %.4f · head radius %.2f cm",
		m.doc.SpacingFactor, m.doc.FrontShift, m.doc.HeadRadius)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderElectrodeTable(m.doc),
		"   ",
		listDimStyle.Render(renderScalpPreview(m.doc)),
	))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Preview grid dimensions in character cells. Terminal cells are roughly
// twice as tall as wide, so the column count doubles the row count to keep
// the head round.
const (
	previewCols = 41
	previewRows = 21
)

// renderScalpPreview draws a rough character-cell scalp view: the head
// circle as dots, electrodes as 'o', fiducials as '+', nasion marked so
// the orientation is obvious.
func renderScalpPreview(d layout.Document) string {
	grid := make([][]rune, previewRows)
	for i := range grid {
		grid[i] = make([]rune, previewCols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	halfW := d.HeadRadius
	if d.Subject.Preauricular/2 > halfW {
		halfW = d.Subject.Preauricular / 2
	}
	halfH := d.HeadRadius
	if d.Subject.NasionInion/2 > halfH {
		halfH = d.Subject.NasionInion / 2
	}
	centerY := -d.Subject.NasionInion / 2

	col := func(x float64) int {
		return int(math.Round((x + halfW) / (2 * halfW) * float64(previewCols-1)))
	}
	row := func(y float64) int {
		return int(math.Round((halfH - (y - centerY)) / (2 * halfH) * float64(previewRows-1)))
	}
	put := func(x, y float64, r rune) {
		ci, ri := col(x), row(y)
		if ri >= 0 && ri < previewRows && ci >= 0 && ci < previewCols {
			grid[ri][ci] = r
		}
	}

	for i := 0; i < 72; i++ {
		a := float64(i) / 72 * 2 * math.Pi
		put(d.HeadRadius*math.Cos(a), centerY+d.HeadRadius*math.Sin(a), '·')
	}

	for _, e := range d.Electrodes {
		mark := 'o'
		if e.Kind == layout.KindFiducial {
			mark = '+'
		}
		put(e.X, e.Y, mark)
	}
	put(0, 0, 'N')

	lines := make([]string, previewRows)
	for i, r := range grid {
		lines[i] = strings.TrimRight(string(r), " ")
	}
	return strings.Join(lines, "\n")
}
