package dto

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// DateTime serializes to "YYYY-MM-DD HH:mm:ss" in JSON
type DateTime time.Time

const DateTimeFormat = "2006-01-02 15:04:05"

func (t DateTime) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(tt.Format(DateTimeFormat))
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*t = DateTime(time.Time{})
		return nil
	}
	tt, err := time.ParseInLocation(DateTimeFormat, str, time.Local)
	if err != nil {
		return err
	}
	*t = DateTime(tt)
	return nil
}

// Value implements driver.Valuer for database writes
func (t DateTime) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner for database reads
func (t *DateTime) Scan(value interface{}) error {
	if value == nil {
		*t = DateTime(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*t = DateTime(v)
	}
	return nil
}

// Time returns the underlying time.Time value
func (t DateTime) Time() time.Time {
	return time.Time(t)
}
