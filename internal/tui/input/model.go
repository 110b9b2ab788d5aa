// Package input содержит модель экрана ввода нового таймера для TUI
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-timekeeper/internal/clock"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// StartMsg отправляется, когда длительность успешно разобрана
type StartMsg struct {
	Seconds int
	Label   string
}

// GoBackMsg отправляется при отмене ввода
type GoBackMsg struct{}

const (
	durationField = iota
	labelField
	numFields
)

// Model представляет модель экрана ввода
type Model struct {
	inputs     []textinput.Model
	focusIndex int
	err        string
}

// NewModel создает модель экрана ввода
func NewModel() *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[durationField] = textinput.New()
	inputs[durationField].Placeholder = "ЧЧ:ММ:СС"
	inputs[durationField].CharLimit = 32
	inputs[durationField].Focus()
	inputs[durationField].PromptStyle = focusedStyle
	inputs[durationField].TextStyle = focusedStyle

	inputs[labelField] = textinput.New()
	inputs[labelField].Placeholder = "Название (необязательно)"
	inputs[labelField].CharLimit = 64
	inputs[labelField].PromptStyle = blurredStyle
	inputs[labelField].TextStyle = blurredStyle

	return &Model{inputs: inputs}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "enter":
			if m.focusIndex == numFields-1 {
				return m, m.submit()
			}
			return m, m.moveFocus(1)

		case "tab", "down":
			return m, m.moveFocus(1)

		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// Err возвращает текст последней ошибки ввода
func (m *Model) Err() string {
	return m.err
}

// moveFocus переводит фокус на соседнее поле по кругу
func (m *Model) moveFocus(delta int) tea.Cmd {
	m.focusIndex = (m.focusIndex + delta + numFields) % numFields

	cmds := make([]tea.Cmd, numFields)
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = blurredStyle
		m.inputs[i].TextStyle = blurredStyle
	}
	return tea.Batch(cmds...)
}

// submit разбирает длительность; ошибка показывается под полями
func (m *Model) submit() tea.Cmd {
	raw := m.inputs[durationField].Value()

	seconds, err := clock.ParseHMS(raw)
	if err == nil && seconds == 0 {
		err = &clock.DurationError{Value: strings.TrimSpace(raw)}
	}
	if err != nil {
		m.err = err.Error()
		return nil
	}

	m.err = ""
	label := strings.TrimSpace(m.inputs[labelField].Value())
	return func() tea.Msg {
		return StartMsg{Seconds: seconds, Label: label}
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Новый таймер"))
	b.WriteString("\n\n")

	labels := []string{"Длительность:", "Название:"}
	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab: следующее поле • Enter: запустить • Esc: назад"))
	return b.String()
}
