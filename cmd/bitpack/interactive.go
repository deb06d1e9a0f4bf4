package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bitpack"
	"github.com/wippyai/bitpack/inspect"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	bitsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectField modelState = iota
	stateEditField
	stateEditRaw
)

type interactiveModel struct {
	err      error
	layout   *bitpack.Layout
	record   bitpack.Record[uint64]
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(l *bitpack.Layout, raw uint64) (*interactiveModel, error) {
	rec, err := bitpack.NewRecordFrom[uint64](l, raw)
	if err != nil {
		return nil, err
	}
	return &interactiveModel{
		layout: l,
		record: rec,
		state:  stateSelectField,
	}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.state == stateSelectField {
			return m, tea.Quit
		}

	case "up", "k":
		if m.state == stateSelectField && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateSelectField && m.selected < m.layout.NumFields()-1 {
			m.selected++
		}

	case "r":
		if m.state == stateSelectField {
			m.startInput(fmt.Sprintf("%#x", m.record.Raw()), "raw: ")
			m.state = stateEditRaw
			return m, textinput.Blink
		}

	case "enter":
		switch m.state {
		case stateSelectField:
			if m.layout.NumFields() == 0 {
				return m, nil
			}
			f := m.layout.Field(m.selected)
			m.startInput(strconv.FormatUint(uint64(m.record.Get(m.selected)), 10),
				fmt.Sprintf("field %d (%d bits): ", f.Index, f.Width))
			m.state = stateEditField
			return m, textinput.Blink

		case stateEditField, stateEditRaw:
			m.commitInput()
			m.state = stateSelectField
		}

	case "esc":
		if m.state != stateSelectField {
			m.state = stateSelectField
			m.err = nil
		}
	}

	if m.state == stateEditField || m.state == stateEditRaw {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) startInput(initial, prompt string) {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.SetValue(initial)
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.err = nil
}

func (m *interactiveModel) commitInput() {
	val, err := strconv.ParseUint(strings.TrimSpace(m.input.Value()), 0, 64)
	if err != nil {
		m.err = fmt.Errorf("bad value %q", m.input.Value())
		return
	}

	switch m.state {
	case stateEditField:
		f := m.layout.Field(m.selected)
		if val > f.Mask {
			m.err = fmt.Errorf("%d truncated to %d bits", val, f.Width)
		}
		m.record.Set(m.selected, val)
	case stateEditRaw:
		m.record.SetRaw(val)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bitpack"))
	fmt.Fprintf(&b, " %d fields, %d bits, storage %s (%s)\n\n",
		m.layout.NumFields(), m.layout.TotalBits(), m.layout.Kind(), m.layout.Preference())

	for _, fv := range inspect.Record(m.record) {
		line := fmt.Sprintf("field %d  width %-2d  offset %-2d  = %s",
			fv.Index, fv.Width, fv.Offset,
			valueStyle.Render(fmt.Sprintf("%d (%#x)", fv.Value, fv.Value)))
		cursor := "  "
		if fv.Index == m.selected && m.state == stateSelectField {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(cursor + fieldStyle.Render(line))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nraw:  %s\n", valueStyle.Render(fmt.Sprintf("%#x", m.record.Raw())))
	fmt.Fprintf(&b, "bits: %s\n", bitsStyle.Render(inspect.BitString(m.layout, m.record.Raw())))

	if m.state == stateEditField || m.state == stateEditRaw {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	} else {
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • r raw • q quit"))
	}

	return b.String()
}

func runInteractive(l *bitpack.Layout, raw uint64) error {
	m, err := newInteractiveModel(l, raw)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
