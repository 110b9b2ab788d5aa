// Package history содержит модель экрана истории сеансов для TUI
package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// RestartMsg отправляется при повторном запуске сеанса
type RestartMsg struct {
	Session data.Session
}

// NewTimerMsg отправляется для перехода к вводу нового таймера
type NewTimerMsg struct{}

// sessionItem реализует интерфейс list.Item для сеанса
type sessionItem struct {
	session data.Session
	layout  clock.Layout
}

func (i sessionItem) FilterValue() string {
	return i.session.Label
}

// sessionItemDelegate отображает элементы списка
type sessionItemDelegate struct{}

func (d sessionItemDelegate) Height() int                             { return 1 }
func (d sessionItemDelegate) Spacing() int                            { return 0 }
func (d sessionItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d sessionItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(sessionItem)
	if !ok {
		return
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(FormatRow(i.session, i.layout)))
}

// FormatRow форматирует сеанс в строку таблицы: ID | Название | Длительность | Прошло | ✓
func FormatRow(s data.Session, layout clock.Layout) string {
	mark := ""
	if s.Completed {
		mark = "✓"
	}
	return fmt.Sprintf("%-4d %-30s %10s %10s %s",
		s.ID,
		utils.TruncateString(utils.OrDefault(s.Label, "—"), 30),
		formatSeconds(s.Duration, layout),
		formatSeconds(s.Elapsed, layout),
		mark)
}

func formatSeconds(s clock.Seconds, layout clock.Layout) string {
	str, err := clock.Format(int(s), layout)
	if err != nil {
		return "--:--"
	}
	return str
}

// Model представляет модель экрана истории
type Model struct {
	list     list.Model
	history  *data.History
	layout   clock.Layout
	quitting bool
}

// NewModel создает модель экрана истории
func NewModel(history *data.History, layout clock.Layout) *Model {
	l := list.New(nil, sessionItemDelegate{}, 0, 0)
	l.Title = "История"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:    l,
		history: history,
		layout:  layout,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData перечитывает сеансы из истории; новые сверху
func (m *Model) RefreshData() {
	sessions := m.history.Sessions
	items := make([]list.Item, len(sessions))
	for i := range sessions {
		items[len(sessions)-1-i] = sessionItem{session: sessions[i], layout: m.layout}
	}
	m.list.SetItems(items)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		// Во время фильтрации клавиши обрабатывает список
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "n":
			return m, func() tea.Msg {
				return NewTimerMsg{}
			}

		case "enter":
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				return m, func() tea.Msg {
					return RestartMsg{Session: item.session}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: запустить снова • n: новый таймер • q: выход")
	return view + "\n" + extraHelp
}
