package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/go-props/props/pkg/errors"
	"github.com/go-props/props/pkg/property"
	"github.com/go-props/props/pkg/sheetdef"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Browse a panel interactively",
		Long: `Open an interactive settings panel in the terminal.

With a definition file, the panel is built from it; without one, a
built-in demo panel is shown.

Keys:
  up/down      move the selection (wrapping, separators skipped)
  left/right   step numeric values backward/forward
  enter/space  trigger actions and toggle switches
  v            toggle visibility of the selected entry's neighbors
  q, esc       quit`,
		Usage: "props demo [file]",
		Run:   runDemo,
	})
}

// demoPanel is shown when no definition file is given.
const demoPanel = `
title: Demo Panel
properties:
  - name: Apply
    widget: button
    text: Apply Now
  - name: Autosave
    widget: checkbox
    "on": true
  - widget: separator
  - name: Master Volume
    widget: slider
    type: f32
    min: 0
    max: 1
    step: 0.05
    default: 0.8
  - name: Threads
    widget: spinbox
    type: i32
    min: 1
    max: 64
    step: 1
    default: 8
  - name: Output
    widget: combobox
    options: [Speakers, Headphones, HDMI]
  - widget: separator
  - name: Mute
    widget: switch
  - name: Preset Name
    widget: textbox
    value: Default
    max_length: 64
`

func runDemo(args []string) error {
	defer errors.Recover("cmd.runDemo")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	var (
		def *sheetdef.Definition
		err error
	)
	switch len(args) {
	case 0:
		def, err = sheetdef.Parse([]byte(demoPanel), sheetdef.FormatYAML)
	case 1:
		def, err = sheetdef.Load(args[0])
	default:
		return fmt.Errorf("demo takes at most one definition file")
	}
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			errors.Report(e)
		}
		return err
	}

	sheet, err := def.Build(sheetdef.BuildOptions{})
	if err != nil {
		return err
	}
	sheet.SelectNext() // place the selection on the first entry

	m := demoModel{title: def.Title, sheet: sheet}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	separatorStyle = lipgloss.NewStyle().Faint(true)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle      = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0, 1)
)

// demoModel is the input-controller half of the demo: it translates key
// events into sheet navigation and activation calls. The View method is
// the presenter half: it only reads.
type demoModel struct {
	title string
	sheet *property.Sheet
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up":
			m.sheet.SelectPrevWrapped()
		case "down":
			m.sheet.SelectNextWrapped()
		case "left":
			m.activate(false)
		case "right", "enter", " ":
			m.activate(true)
		case "v":
			if p, ok := m.sheet.CurrentSelected(); ok {
				m.toggleNeighborVisibility(p.ID())
			}
		}
	}
	return m, nil
}

// activate dispatches an activation input on the current selection by
// value kind: actions trigger, switches toggle, numbers step, and text
// boxes and separators ignore it.
func (m demoModel) activate(forward bool) {
	p, ok := m.sheet.CurrentSelected()
	if !ok {
		return
	}
	switch p.ValueType() {
	case property.ValueTypeAction:
		property.TriggerAction(p, true)
	case property.ValueTypeBool:
		if b, ok := property.AsBool(p); ok {
			b.Toggle()
		}
	case property.ValueTypeF32:
		if n, ok := property.AsFloat32(p); ok {
			step(n, forward)
		}
	case property.ValueTypeF64:
		if n, ok := property.AsFloat64(p); ok {
			step(n, forward)
		}
	case property.ValueTypeI32:
		if n, ok := property.AsInt32(p); ok {
			step(n, forward)
		}
	case property.ValueTypeI64:
		if n, ok := property.AsInt64(p); ok {
			step(n, forward)
		}
	}
}

func step[T property.Scalar](n *property.Number[T], forward bool) {
	if forward {
		n.StepForward()
	} else {
		n.StepBackward()
	}
}

// toggleNeighborVisibility flips visibility of the entries around id,
// demonstrating that presenters honor the visible flag.
func (m demoModel) toggleNeighborVisibility(id int) {
	if p, ok := m.sheet.Get(id + 1); ok {
		p.SetVisible(!p.Visible())
	}
	if p, ok := m.sheet.Get(id - 1); ok {
		p.SetVisible(!p.Visible())
	}
}

func (m demoModel) View() string {
	title := m.title
	if title == "" {
		title = "Settings"
	}
	out := titleStyle.Render(title) + "\n\n"

	for _, p := range m.sheet.Items() {
		if !p.Visible() {
			continue
		}
		line := renderItem(p)
		if p.Selected() {
			line = selectedStyle.Render(line)
		}
		out += " " + line + "\n"
	}

	out += helpStyle.Render("up/down move · left/right adjust · enter activate · q quit")
	return out
}

func renderItem(p property.Property) string {
	switch p.WidgetType() {
	case property.WidgetTypeSeparator:
		return separatorStyle.Render("────────────────────────────")
	case property.WidgetTypeButton:
		label := p.Name()
		if opts := p.Options(); len(opts) > 0 {
			label = opts[0]
		}
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render("[ "+label+" ]"))
	case property.WidgetTypeCheckBox:
		mark := " "
		if checked, _ := property.ActionChecked(p); checked {
			mark = "x"
		}
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render("["+mark+"]"))
	case property.WidgetTypeSwitch:
		state := "off"
		if v, _ := property.BoolValue(p); v {
			state = "on"
		}
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render(state))
	case property.WidgetTypeComboBox, property.WidgetTypeSelect:
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render("‹ "+choiceLabel(p)+" ›"))
	case property.WidgetTypeSlider, property.WidgetTypeSpinBox:
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render(numberLabel(p)))
	case property.WidgetTypeTextBox:
		v, _ := property.StringValue(p)
		return fmt.Sprintf("%-16s %s", p.Name(), valueStyle.Render(v))
	default:
		return p.Name()
	}
}

func choiceLabel(p property.Property) string {
	idx := -1
	if v, ok := property.Int32Value(p); ok {
		idx = int(v)
	} else if v, ok := property.Int64Value(p); ok {
		idx = int(v)
	}
	opts := p.Options()
	if idx >= 0 && idx < len(opts) {
		return opts[idx]
	}
	return fmt.Sprintf("?%d", idx)
}

func numberLabel(p property.Property) string {
	if v, ok := property.Float32Value(p); ok {
		return fmt.Sprintf("%.2f", v)
	}
	if v, ok := property.Float64Value(p); ok {
		return fmt.Sprintf("%.2f", v)
	}
	if v, ok := property.Int32Value(p); ok {
		return fmt.Sprintf("%d", v)
	}
	if v, ok := property.Int64Value(p); ok {
		return fmt.Sprintf("%d", v)
	}
	return "?"
}
