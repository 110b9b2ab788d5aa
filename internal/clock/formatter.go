package clock

import (
	"github.com/hazadus/go-timekeeper/internal/logging"
)

var defaultFormatter = New()

// Formatter выполняет те же преобразования, что и функции пакета,
// дополнительно сообщая о каждом вызове в регистратор
type Formatter struct {
	log *logging.Logger
}

// Option настраивает Formatter
type Option func(*Formatter)

// WithLogger задает регистратор для диагностических сообщений
func WithLogger(l *logging.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.log = l
		}
	}
}

// New создает Formatter; без опций он ничего не логирует
func New(opts ...Option) *Formatter {
	f := &Formatter{log: logging.Discard()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) FormatHMS(seconds int) (string, error) {
	return f.format(seconds, LayoutHMS)
}

func (f *Formatter) FormatMS(seconds int) (string, error) {
	return f.format(seconds, LayoutMS)
}

func (f *Formatter) Format(seconds int, layout Layout) (string, error) {
	return f.format(seconds, layout)
}

func (f *Formatter) ParseHMS(s string) (int, error) {
	return f.parse(s, LayoutHMS)
}

func (f *Formatter) ParseMS(s string) (int, error) {
	return f.parse(s, LayoutMS)
}

func (f *Formatter) Parse(s string, layout Layout) (int, error) {
	return f.parse(s, layout)
}

func (f *Formatter) format(seconds int, layout Layout) (string, error) {
	if err := checkSeconds(seconds); err != nil {
		f.log.Debug("format rejected", "seconds", seconds, "layout", layout.String(), "err", err)
		return "", err
	}

	var out string
	if layout == LayoutMS {
		out = formatMS(seconds)
	} else {
		out = formatHMS(seconds)
	}

	f.log.Debug("formatted", "seconds", seconds, "layout", layout.String(), "clock", out)
	return out, nil
}

func (f *Formatter) parse(s string, layout Layout) (int, error) {
	var (
		seconds int
		err     error
	)
	if layout == LayoutMS {
		seconds, err = parseMS(s)
	} else {
		seconds, err = parseHMS(s)
	}

	if err != nil {
		f.log.Debug("parse rejected", "input", s, "layout", layout.String(), "err", err)
		return 0, err
	}

	f.log.Debug("parsed", "input", s, "layout", layout.String(), "seconds", seconds)
	return seconds, nil
}
