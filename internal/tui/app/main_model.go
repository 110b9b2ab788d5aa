// Package app содержит основную логику TUI приложения
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/timer"
	"github.com/hazadus/go-timekeeper/internal/tui/countdown"
	"github.com/hazadus/go-timekeeper/internal/tui/history"
	"github.com/hazadus/go-timekeeper/internal/tui/input"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// HistoryScreen - экран истории сеансов
	HistoryScreen ScreenType = iota
	// InputScreen - экран ввода нового таймера
	InputScreen
	// CountdownScreen - экран обратного отсчета
	CountdownScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	history        *data.History
	currentScreen  ScreenType
	historyModel   *history.Model
	inputModel     *input.Model
	countdownModel *countdown.Model
	timer          *timer.Timer // Общий таймер для всех экранов отсчета
	options        countdown.Options
	saveFunc       func() error // Функция для сохранения истории
	now            func() time.Time
	err            error
}

// NewMainModel создает новую главную модель
func NewMainModel(h *data.History, t *timer.Timer, options countdown.Options, saveFunc func() error) *MainModel {
	m := &MainModel{
		history:      h,
		historyModel: history.NewModel(h, options.Layout),
		timer:        t,
		options:      options,
		saveFunc:     saveFunc,
		now:          time.Now,
	}

	// При пустой истории сразу предлагаем ввести таймер
	if len(h.Sessions) == 0 {
		m.currentScreen = InputScreen
		m.inputModel = input.NewModel()
	}
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	if m.currentScreen == InputScreen {
		return m.inputModel.Init()
	}
	return m.historyModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.currentScreen == CountdownScreen && m.countdownModel != nil {
				if session := m.countdownModel.Interrupt(); session != nil {
					m.record(*session)
				}
			}
			m.timer.Stop()
			return m, tea.Quit
		}

	case history.NewTimerMsg:
		m.currentScreen = InputScreen
		m.inputModel = input.NewModel()
		return m, m.inputModel.Init()

	case history.RestartMsg:
		return m, m.startCountdown(msg.Session.Label, int(msg.Session.Duration), msg.Session.Source)

	case input.StartMsg:
		m.inputModel = nil
		return m, m.startCountdown(msg.Label, msg.Seconds, "")

	case input.GoBackMsg:
		m.showHistory()
		return m, nil

	case countdown.FinishedMsg:
		m.record(msg.Session)
		return m, nil

	case countdown.GoBackMsg:
		if msg.Session != nil {
			m.record(*msg.Session)
		}
		m.countdownModel = nil
		m.showHistory()
		return m, nil
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case HistoryScreen:
		m.historyModel, cmd = m.historyModel.Update(msg)

	case InputScreen:
		if m.inputModel != nil {
			m.inputModel, cmd = m.inputModel.Update(msg)
		}

	case CountdownScreen:
		if m.countdownModel != nil {
			var updated tea.Model
			updated, cmd = m.countdownModel.Update(msg)
			if countdownModel, ok := updated.(*countdown.Model); ok {
				m.countdownModel = countdownModel
			}
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var view string
	switch m.currentScreen {
	case HistoryScreen:
		view = m.historyModel.View()

	case InputScreen:
		if m.inputModel == nil {
			return "Ошибка: модель ввода не инициализирована"
		}
		view = m.inputModel.View()

	case CountdownScreen:
		if m.countdownModel == nil {
			return "Ошибка: модель отсчета не инициализирована"
		}
		view = m.countdownModel.View()

	default:
		return "Неизвестный экран"
	}

	if m.err != nil {
		view += "\n" + "Ошибка сохранения истории: " + m.err.Error()
	}
	return view
}

// Err возвращает последнюю ошибку сохранения
func (m *MainModel) Err() error {
	return m.err
}

// Close останавливает таймер
func (m *MainModel) Close() error {
	return m.timer.Close()
}

// startCountdown переключается на экран отсчета
func (m *MainModel) startCountdown(label string, seconds int, source string) tea.Cmd {
	session := data.Session{
		Label:     label,
		Duration:  clock.Seconds(seconds),
		StartedAt: m.now(),
		Source:    source,
	}

	m.currentScreen = CountdownScreen
	m.countdownModel = countdown.NewModel(m.timer, session, m.options)
	return m.countdownModel.Init()
}

// showHistory переключается на экран истории
func (m *MainModel) showHistory() {
	m.currentScreen = HistoryScreen
	m.inputModel = nil
	m.historyModel.RefreshData()
}

// record добавляет сеанс в историю и сохраняет её
func (m *MainModel) record(session data.Session) {
	m.history.AddSession(session)
	if m.saveFunc != nil {
		m.err = m.saveFunc()
	}
}
