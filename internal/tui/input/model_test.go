package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeText вводит строку в активное поле
func typeText(m *Model, s string) *Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(m *Model) (*Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmit(t *testing.T) {
	m := NewModel()
	m = typeText(m, "1:30")
	m, _ = enter(m)
	assert.Equal(t, labelField, m.focusIndex)

	m = typeText(m, "чай")
	m, cmd := enter(m)
	require.NotNil(t, cmd)

	msg, ok := cmd().(StartMsg)
	require.True(t, ok)
	assert.Equal(t, 90, msg.Seconds)
	assert.Equal(t, "чай", msg.Label)
	assert.Empty(t, m.Err())
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters", "ab:cd", "ошибка разбора времени"},
		{"too many fields", "1:2:3:4", "ошибка разбора времени"},
		{"empty", "", "ошибка разбора времени"},
		{"zero", "00:00", "недопустимая длительность"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m = typeText(m, tt.input)
			m, _ = enter(m)
			m, cmd := enter(m)

			assert.Nil(t, cmd)
			assert.Contains(t, m.Err(), tt.want)
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestFocusWraps(t *testing.T) {
	m := NewModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, labelField, m.focusIndex)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, durationField, m.focusIndex)
}

func TestEscape(t *testing.T) {
	m := NewModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, GoBackMsg{}, cmd())
}
