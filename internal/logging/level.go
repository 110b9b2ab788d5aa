package logging

import (
	"encoding"
	"fmt"
	"strings"
)

var (
	_ encoding.TextMarshaler   = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Level определяет уровень логирования.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelError Level = 4
)

// ParseLevel разбирает название уровня: "debug", "info" или "error".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("неизвестный уровень логирования: %q", s)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l Level) String() string {
	switch {
	case l < LevelInfo:
		return "debug"
	case l < LevelError:
		return "info"
	default:
		return "error"
	}
}
