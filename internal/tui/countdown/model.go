// Package countdown содержит модель экрана обратного отсчета для TUI
package countdown

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/timer"
	"github.com/hazadus/go-timekeeper/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// Ringer проигрывает сигнал завершения
type Ringer interface {
	Ring(ctx context.Context) error
}

// Options настраивает экран отсчета
type Options struct {
	Layout     clock.Layout
	Animations bool
	Chime      Ringer // nil отключает сигнал
}

// GoBackMsg отправляется для возврата к истории.
// Session заполнена, если отсчет прерван и его нужно записать.
type GoBackMsg struct {
	Session *data.Session
}

// FinishedMsg отправляется, когда отсчет дошел до нуля
type FinishedMsg struct {
	Session data.Session
}

// ProgressMsg содержит обновление состояния таймера
type ProgressMsg struct {
	Status timer.Status
}

// DoneMsg приходит из таймера при завершении отсчета
type DoneMsg struct{}

// ErrorMsg отправляется при ошибке запуска
type ErrorMsg struct {
	Error error
}

// chimeMsg приходит после проигрывания сигнала
type chimeMsg struct {
	err error
}

// Model представляет модель экрана обратного отсчета
type Model struct {
	timer       *timer.Timer
	session     data.Session
	opts        Options
	progressBar progress.Model
	status      timer.Status
	finished    bool
	err         error
	chimeErr    error
	ctx         context.Context
	cancel      context.CancelFunc
	width       int
	height      int
}

// NewModel создает модель отсчета для сеанса; таймер переиспользуется между экранами
func NewModel(t *timer.Timer, session data.Session, opts Options) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		timer:       t,
		session:     session,
		opts:        opts,
		progressBar: prog,
		status: timer.Status{
			Total:     int(session.Duration),
			Remaining: int(session.Duration),
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Init запускает отсчет
func (m *Model) Init() tea.Cmd {
	if err := m.timer.Start(int(m.session.Duration)); err != nil {
		return func() tea.Msg {
			return ErrorMsg{Error: err}
		}
	}
	return m.listen()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, m.leave()

		case " ":
			if !m.finished {
				m.timer.Pause()
			}
			return m, nil
		}

	case ProgressMsg:
		if m.finished {
			return m, nil
		}
		m.status = msg.Status
		m.session.Elapsed = clock.Seconds(msg.Status.Elapsed)
		if !m.opts.Animations {
			return m, m.listen()
		}
		return m, tea.Batch(
			m.progressBar.SetPercent(msg.Status.Fraction()),
			m.listen(),
		)

	case DoneMsg:
		return m, m.finish()

	case ErrorMsg:
		m.err = msg.Error
		return m, nil

	case chimeMsg:
		m.chimeErr = msg.err
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// Finished возвращает true, если отсчет дошел до нуля
func (m *Model) Finished() bool {
	return m.finished
}

// finish фиксирует завершение, записывает сеанс и запускает сигнал
func (m *Model) finish() tea.Cmd {
	if m.finished {
		return nil
	}
	m.finished = true
	m.status.Elapsed = m.status.Total
	m.status.Remaining = 0
	m.status.Paused = false
	m.session.Elapsed = m.session.Duration
	m.session.Completed = true

	session := m.session
	cmds := []tea.Cmd{func() tea.Msg {
		return FinishedMsg{Session: session}
	}}
	if m.opts.Animations {
		cmds = append(cmds, m.progressBar.SetPercent(1))
	}
	if m.opts.Chime != nil {
		ring := m.opts.Chime
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			return chimeMsg{err: ring.Ring(ctx)}
		})
	}
	return tea.Batch(cmds...)
}

// Interrupt останавливает незавершенный отсчет. Возвращает прерванный
// сеанс, если прошла хотя бы одна секунда, иначе nil.
func (m *Model) Interrupt() *data.Session {
	m.cancel()
	if m.finished || m.err != nil {
		return nil
	}

	m.timer.Stop()
	m.session.Elapsed = clock.Seconds(m.timer.Snapshot().Elapsed)
	if m.session.Elapsed == 0 {
		return nil
	}
	session := m.session
	return &session
}

// leave останавливает отсчет и возвращает к истории
func (m *Model) leave() tea.Cmd {
	interrupted := m.Interrupt()
	return func() tea.Msg {
		return GoBackMsg{Session: interrupted}
	}
}

// listen слушает обновления от таймера до выхода с экрана
func (m *Model) listen() tea.Cmd {
	progressChan := m.timer.Progress()
	doneChan := m.timer.Done()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case status, ok := <-progressChan:
			if !ok {
				return nil
			}
			return ProgressMsg{Status: status}
		case _, ok := <-doneChan:
			if !ok {
				return nil
			}
			return DoneMsg{}
		}
	}
}

// View отображает модель
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("❌ Ошибка запуска таймера"),
			errorStyle.Render(m.err.Error()),
			controlsStyle.Render("Нажмите 'q' или 'esc' для возврата"),
		)
	}

	title := titleStyle.Render("⏱ Обратный отсчет")

	label := m.session.Label
	if label == "" {
		label = "Без названия"
	}
	labelText := labelStyle.Render(utils.TruncateString(label, 60))

	statusText := statusStyle.Render(formatStatus(m.finished, m.status.Paused))

	var bar string
	if m.opts.Animations {
		bar = m.progressBar.View()
	} else {
		bar = m.progressBar.ViewAs(m.status.Fraction())
	}

	timeText := fmt.Sprintf(
		"%s прошло • %s осталось • всего %s",
		m.clock(m.status.Elapsed),
		m.clock(m.status.Remaining),
		m.clock(m.status.Total),
	)

	view := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n%s", title, labelText, statusText, bar, timeText)
	if m.chimeErr != nil {
		view += "\n\n" + errorStyle.Render("Сигнал недоступен: "+m.chimeErr.Error())
	}

	controls := "Пробел: пауза/продолжить • q/esc: назад к истории"
	if m.finished {
		controls = "q/esc: назад к истории"
	}
	return view + "\n\n" + controlsStyle.Render(controls)
}

// clock форматирует секунды в выбранном формате
func (m *Model) clock(seconds int) string {
	s, err := clock.Format(seconds, m.opts.Layout)
	if err != nil {
		return "--:--"
	}
	return s
}

func formatStatus(finished, paused bool) string {
	switch {
	case finished:
		return "🔔 Время вышло"
	case paused:
		return "⏸️ Пауза"
	default:
		return "▶️ Идет отсчет"
	}
}
