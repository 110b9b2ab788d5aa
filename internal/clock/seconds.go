package clock

import "time"

// Seconds хранит длительность в секундах и сериализуется как строка HH:MM:SS
type Seconds int

// Duration возвращает значение как time.Duration
func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

func (s Seconds) String() string {
	if s < 0 {
		return "-" + formatHMS(int(-s))
	}
	return formatHMS(int(s))
}

func (s Seconds) MarshalText() ([]byte, error) {
	out, err := FormatHMS(int(s))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (s *Seconds) UnmarshalText(text []byte) error {
	v, err := ParseHMS(string(text))
	if err != nil {
		return err
	}
	*s = Seconds(v)
	return nil
}
