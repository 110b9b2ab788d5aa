package clock

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-timekeeper/internal/logging"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{5, "00:00:05"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{7381, "02:03:01"},
		{92730, "25:45:30"},
		{360000, "100:00:00"},
	}

	for _, test := range tests {
		result, err := FormatHMS(test.seconds)
		if err != nil {
			t.Errorf("FormatHMS(%d) вернула ошибку: %v", test.seconds, err)
			continue
		}
		if result != test.expected {
			t.Errorf("FormatHMS(%d) = %s; expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestFormatMS(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{90, "01:30"},
		{605, "10:05"},
		{3599, "59:59"},
		{3600, "60:00"},
		{6000, "100:00"},
	}

	for _, test := range tests {
		result, err := FormatMS(test.seconds)
		if err != nil {
			t.Errorf("FormatMS(%d) вернула ошибку: %v", test.seconds, err)
			continue
		}
		if result != test.expected {
			t.Errorf("FormatMS(%d) = %s; expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestFormatNegative(t *testing.T) {
	for _, layout := range []Layout{LayoutHMS, LayoutMS} {
		_, err := Format(-1, layout)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Format(-1, %s): ожидалась ErrInvalidDuration, получено %v", layout, err)
		}

		var durErr *DurationError
		if !errors.As(err, &durErr) || durErr.Value != "-1" {
			t.Errorf("Format(-1, %s): ожидалась DurationError со значением -1, получено %v", layout, err)
		}
	}
}

func TestParseHMS(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"45", 45},
		{"2:30", 150},
		{"00:02:30", 150},
		{"01:01:01", 3661},
		{"1:1:1", 3661},
		{"00:00:00", 0},
		{"25:45:30", 92730},
		{"100:00:00", 360000},
		{"90:00", 5400},
		{" 01 : 02 : 03 ", 3723},
	}

	for _, test := range tests {
		result, err := ParseHMS(test.input)
		if err != nil {
			t.Errorf("ParseHMS(%q) вернула ошибку: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseHMS(%q) = %d; expected %d", test.input, result, test.expected)
		}
	}
}

func TestParseMS(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:05", 5},
		{"01:30", 90},
		{"60:00", 3600},
		{"100:00", 6000},
	}

	for _, test := range tests {
		result, err := ParseMS(test.input)
		if err != nil {
			t.Errorf("ParseMS(%q) вернула ошибку: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseMS(%q) = %d; expected %d", test.input, result, test.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout Layout
		field  string
	}{
		{"non-numeric ms", "ab:cd", LayoutMS, "minutes"},
		{"non-numeric seconds", "01:xx", LayoutMS, "seconds"},
		{"single field ms", "45", LayoutMS, ""},
		{"three fields ms", "01:02:03", LayoutMS, ""},
		{"four fields hms", "1:2:3:4", LayoutHMS, ""},
		{"empty hms", "", LayoutHMS, "seconds"},
		{"empty hours", ":10:00", LayoutHMS, "hours"},
		{"negative field", "-1:00", LayoutHMS, "minutes"},
		{"plus sign", "+5", LayoutHMS, "seconds"},
		{"fraction", "00:01.5", LayoutHMS, "seconds"},
		{"overflow", "99999999999999999999", LayoutHMS, "seconds"},
		{"overflow sum hms", "2562047788015215:153722867280912930:9223372036854775807", LayoutHMS, ""},
		{"overflow sum ms", "153722867280912930:9223372036854775807", LayoutMS, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input, tt.layout)
			if err == nil {
				t.Fatalf("Parse(%q) = %d; ожидалась ошибка", tt.input, result)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("ожидалась ErrParse, получено %v", err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ожидалась *ParseError, получено %T", err)
			}
			if parseErr.Input != tt.input {
				t.Errorf("Input = %q; expected %q", parseErr.Input, tt.input)
			}
			if parseErr.Field != tt.field {
				t.Errorf("Field = %q; expected %q", parseErr.Field, tt.field)
			}
			if !IsParseError(err) || IsInvalidDuration(err) {
				t.Errorf("неверная классификация ошибки: %v", err)
			}
		})
	}
}

func TestRoundTripHMS(t *testing.T) {
	for s := 0; s < 24*3600; s++ {
		out, err := FormatHMS(s)
		if err != nil {
			t.Fatalf("FormatHMS(%d): %v", s, err)
		}
		back, err := ParseHMS(out)
		if err != nil {
			t.Fatalf("ParseHMS(%q): %v", out, err)
		}
		if back != s {
			t.Fatalf("ParseHMS(FormatHMS(%d)) = %d", s, back)
		}
	}
}

func TestRoundTripMS(t *testing.T) {
	for s := 0; s < 3600; s++ {
		out, err := FormatMS(s)
		if err != nil {
			t.Fatalf("FormatMS(%d): %v", s, err)
		}
		back, err := ParseMS(out)
		if err != nil {
			t.Fatalf("ParseMS(%q): %v", out, err)
		}
		if back != s {
			t.Fatalf("ParseMS(FormatMS(%d)) = %d", s, back)
		}
		// Строка MM:SS также читается как HH:MM:SS с пропущенными часами
		if hms, _ := ParseHMS(out); hms != s {
			t.Fatalf("ParseHMS(FormatMS(%d)) = %d", s, hms)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		layout   Layout
		expected string
	}{
		{0, LayoutHMS, "00:00:00"},
		{59*time.Second + 900*time.Millisecond, LayoutHMS, "00:00:59"},
		{61*time.Minute + 1*time.Second, LayoutHMS, "01:01:01"},
		{25*time.Hour + 45*time.Minute + 30*time.Second, LayoutHMS, "25:45:30"},
		{10*time.Minute + 5*time.Second, LayoutMS, "10:05"},
		{-5 * time.Second, LayoutMS, "00:00"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration, test.layout)
		if result != test.expected {
			t.Errorf("FormatDuration(%v, %s) = %s; expected %s", test.duration, test.layout, result, test.expected)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if v, err := FromFloat(90.7); err != nil || v != 90 {
		t.Errorf("FromFloat(90.7) = %d, %v; expected 90", v, err)
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat(bad); !IsInvalidDuration(err) {
			t.Errorf("FromFloat(%v): ожидалась ErrInvalidDuration, получено %v", bad, err)
		}
	}
}

func TestFromDuration(t *testing.T) {
	if v, err := FromDuration(3*time.Minute + 400*time.Millisecond); err != nil || v != 180 {
		t.Errorf("FromDuration = %d, %v; expected 180", v, err)
	}
	if _, err := FromDuration(-time.Second); !IsInvalidDuration(err) {
		t.Errorf("ожидалась ErrInvalidDuration, получено %v", err)
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		want    Layout
		wantErr bool
	}{
		{"hms", LayoutHMS, false},
		{"MS", LayoutMS, false},
		{"mm:ss", LayoutMS, false},
		{"", LayoutHMS, false},
		{"days", LayoutHMS, true},
	}

	for _, tt := range tests {
		got, err := ParseLayout(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLayout(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLayout(%q) = %v; expected %v", tt.name, got, tt.want)
		}
	}
}

func TestSecondsYAML(t *testing.T) {
	type session struct {
		Duration Seconds `yaml:"duration"`
	}

	data, err := yaml.Marshal(session{Duration: 1500})
	if err != nil {
		t.Fatalf("ошибка сериализации: %v", err)
	}
	if !strings.Contains(string(data), "00:25:00") {
		t.Errorf("ожидалась строка 00:25:00, получено %s", data)
	}

	var decoded session
	if err := yaml.Unmarshal([]byte("duration: \"2:30\"\n"), &decoded); err != nil {
		t.Fatalf("ошибка разбора: %v", err)
	}
	if decoded.Duration != 150 {
		t.Errorf("Duration = %d; expected 150", decoded.Duration)
	}

	if err := yaml.Unmarshal([]byte("duration: \"ab:cd\"\n"), &decoded); !errors.Is(err, ErrParse) {
		t.Errorf("ожидалась ErrParse, получено %v", err)
	}

	if _, err := yaml.Marshal(session{Duration: -1}); err == nil {
		t.Error("ожидалась ошибка сериализации отрицательной длительности")
	}
}

func TestFormatterLogger(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithLogger(logging.New(&buf, logging.LevelDebug)))

	out, err := f.FormatHMS(3661)
	if err != nil || out != "01:01:01" {
		t.Fatalf("FormatHMS(3661) = %s, %v", out, err)
	}
	if !strings.Contains(buf.String(), `"clock":"01:01:01"`) {
		t.Errorf("ожидалась запись в лог, получено %s", buf.String())
	}

	buf.Reset()
	if _, err := f.ParseMS("ab:cd"); err == nil {
		t.Fatal("ожидалась ошибка разбора")
	}
	if !strings.Contains(buf.String(), "parse rejected") {
		t.Errorf("ожидалась запись об ошибке в лог, получено %s", buf.String())
	}
}

func TestDefaultFormatterIsSilent(t *testing.T) {
	if defaultFormatter.log.Enabled(logging.LevelError) {
		t.Error("формат по умолчанию не должен писать в лог")
	}
}
