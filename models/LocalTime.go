package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Wire layout for timestamps: ISO-8601 local date-time, no zone.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a time.Time that marshals without a timezone offset.
// Clients send and receive "2006-01-02T15:04:05"; RFC3339 is accepted
// on input for tooling convenience.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(LocalTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(LocalTimeLayout, raw, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
	}
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: expected %s", raw, LocalTimeLayout)
	}
	t.Time = parsed
	return nil
}

func (t LocalTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *LocalTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", src)
	}
	return nil
}

func (t *LocalTime) scanString(raw string) error {
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
	}
	if err != nil {
		return fmt.Errorf("cannot scan %q into LocalTime", raw)
	}
	t.Time = parsed
	return nil
}
