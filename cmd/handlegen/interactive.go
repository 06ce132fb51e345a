package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/giusdp/gamekit/handlegen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	bitsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputPackage = iota
	inputName
	inputIndexBits
	inputCycleBits
)

type interactiveModel struct {
	err      error
	out      string
	preview  string
	written  string
	count    int
	types    []handlegen.Type
	pending  handlegen.Type
	inputs   []textinput.Model
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateEditLayout modelState = iota
	stateShowPreview
	stateDone
)

type writeDoneMsg struct {
	err   error
	path  string
	count int
}

func newInteractiveModel(out string) *interactiveModel {
	prompts := []struct{ prompt, placeholder string }{
		{"package: ", "gfx"},
		{"type name: ", "Texture"},
		{"index bits: ", "22"},
		{"cycle bits: ", "10"},
	}

	inputs := make([]textinput.Model, len(prompts))
	for i, p := range prompts {
		ti := textinput.New()
		ti.Prompt = p.prompt
		ti.Placeholder = p.placeholder
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	return &interactiveModel{
		out:    out,
		inputs: inputs,
		state:  stateEditLayout,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEditLayout {
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateEditLayout {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "enter":
			switch m.state {
			case stateEditLayout:
				t, err := m.validate()
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.pending = t
				m.preview = buildPreview(t)
				m.state = stateShowPreview

			case stateShowPreview:
				return m, m.writeFile
			}

		case "a":
			if m.state == stateShowPreview {
				m.types = append(m.types, m.pending)
				m.resetTypeInputs()
				m.state = stateEditLayout
			}

		case "esc":
			if m.state == stateShowPreview {
				m.state = stateEditLayout
			}
		}

	case writeDoneMsg:
		m.err = msg.err
		m.written = msg.path
		m.count = msg.count
		m.state = stateDone
	}

	if m.state == stateEditLayout {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// validate assembles the in-progress type and checks it together with the
// queued ones, so duplicates and package problems surface before writing.
func (m *interactiveModel) validate() (handlegen.Type, error) {
	indexBits, err := parseBits(m.inputs[inputIndexBits].Value())
	if err != nil {
		return handlegen.Type{}, fmt.Errorf("index bits: %w", err)
	}
	cycleBits, err := parseBits(m.inputs[inputCycleBits].Value())
	if err != nil {
		return handlegen.Type{}, fmt.Errorf("cycle bits: %w", err)
	}

	t := handlegen.Type{
		Name:      strings.TrimSpace(m.inputs[inputName].Value()),
		IndexBits: indexBits,
		CycleBits: cycleBits,
	}
	f := handlegen.File{
		Package: strings.TrimSpace(m.inputs[inputPackage].Value()),
		Types:   append(append([]handlegen.Type{}, m.types...), t),
	}
	if err := f.Validate(); err != nil {
		return handlegen.Type{}, err
	}
	return t, nil
}

func (m *interactiveModel) writeFile() tea.Msg {
	f := handlegen.File{
		Package: strings.TrimSpace(m.inputs[inputPackage].Value()),
		Types:   append(append([]handlegen.Type{}, m.types...), m.pending),
	}
	if err := handlegen.GenerateFile(f, m.out); err != nil {
		return writeDoneMsg{err: err}
	}
	return writeDoneMsg{path: m.out, count: len(f.Types)}
}

func (m *interactiveModel) resetTypeInputs() {
	for _, i := range []int{inputName, inputIndexBits, inputCycleBits} {
		m.inputs[i].Reset()
	}
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = inputName
	m.inputs[m.focusIdx].Focus()
}

// layoutLine renders the packed word live while widths are being typed.
func (m *interactiveModel) layoutLine() string {
	indexBits, err1 := parseBits(m.inputs[inputIndexBits].Value())
	cycleBits, err2 := parseBits(m.inputs[inputCycleBits].Value())
	if err1 != nil || err2 != nil || indexBits == 0 || cycleBits == 0 {
		return ""
	}
	total := indexBits + cycleBits
	word := wordName(total)
	if word == "" {
		return fmt.Sprintf("[ cycle %d | index %d ] no %d-bit word", cycleBits, indexBits, total)
	}
	return fmt.Sprintf("[ cycle %d | index %d ] -> %s", cycleBits, indexBits, word)
}

func buildPreview(t handlegen.Type) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(t.Name + "Handle"))
	fmt.Fprintf(&b, " packs into a %s\n\n", wordName(t.Total()))
	fmt.Fprintf(&b, "  index  %s bits  max %s\n",
		bitsStyle.Render(strconv.FormatUint(uint64(t.IndexBits), 10)), maxStr(t.IndexBits))
	fmt.Fprintf(&b, "  cycle  %s bits  max %s\n",
		bitsStyle.Render(strconv.FormatUint(uint64(t.CycleBits), 10)), maxStr(t.CycleBits))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Declares Pack%sHandle, %sHandleFromBits, Nil%sHandle,\n", t.Name, t.Name, t.Name)
	fmt.Fprintf(&b, "%sHandleParts and the Max%sHandle constants.\n", t.Name, t.Name)

	return b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("handlegen"))
	b.WriteString(" ")
	b.WriteString(m.out)
	b.WriteString("\n\n")

	switch m.state {
	case stateEditLayout:
		b.WriteString("Describe a handle type:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		if layout := m.layoutLine(); layout != "" {
			b.WriteString("\n")
			b.WriteString(bitsStyle.Render(layout))
			b.WriteString("\n")
		}
		if len(m.types) > 0 {
			b.WriteString("\nQueued: ")
			b.WriteString(strings.Join(typeNames(m.types), ", "))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter preview • ctrl+c quit"))

	case stateShowPreview:
		b.WriteString(m.preview)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter write • a add another type • esc back • q quit"))

	case stateDone:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(fmt.Sprintf("Wrote %d handle type(s) to %s", m.count, m.written)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
	}

	return b.String()
}

func typeNames(types []handlegen.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}

// maxStr renders a field's largest value; widths past uint64 stay symbolic.
func maxStr(bits uint) string {
	if bits > 63 {
		return fmt.Sprintf("2^%d - 1", bits)
	}
	return strconv.FormatUint(1<<bits-1, 10)
}

func parseBits(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(s))
	}
	return uint(v), nil
}

func wordName(total uint) string {
	switch total {
	case 8, 16, 32, 64:
		return fmt.Sprintf("uint%d", total)
	case 128:
		return "handle.U128"
	case 256:
		return "handle.U256"
	default:
		return ""
	}
}

func runInteractive(out string) error {
	if out == "" {
		out = "handles_gen.go"
	}
	p := tea.NewProgram(newInteractiveModel(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
