package banque

import (
	"encoding/json"
	"fmt"
	"time"
)

// StampFormat is the format used to persist operation timestamps.
const StampFormat = time.RFC3339

// stampReadFormats are the accepted formats when reading a bank file. The
// naive forms (no time zone, optional fractional seconds) are what Python's
// datetime.isoformat() produces, so files written by the historical simulator
// load unchanged.
var stampReadFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp is the instant an operation was recorded. It keeps the exact text
// it was created or loaded with, so a load/save cycle never rewrites history.
type Timestamp struct {
	text string
}

// Now returns a Timestamp for the current instant.
func Now() Timestamp {
	return Timestamp{text: time.Now().Format(StampFormat)}
}

// ParseTimestamp validates s against the accepted formats and returns a
// Timestamp holding s verbatim.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, format := range stampReadFormats {
		if _, err := time.Parse(format, s); err == nil {
			return Timestamp{text: s}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q, want format %q", s, StampFormat)
}

// String returns the full ISO-8601 text of the timestamp.
func (t Timestamp) String() string { return t.text }

// Day returns the date portion (YYYY-MM-DD) of the timestamp.
func (t Timestamp) Day() string {
	if len(t.text) < len("2006-01-02") {
		return t.text
	}
	return t.text[:len("2006-01-02")]
}

// IsZero returns true if the timestamp is the zero value.
func (t Timestamp) IsZero() bool { return t.text == "" }

// Time parses the timestamp back into a time.Time.
func (t Timestamp) Time() (time.Time, error) {
	var err error
	for _, format := range stampReadFormats {
		var when time.Time
		if when, err = time.Parse(format, t.text); err == nil {
			return when, nil
		}
	}
	return time.Time{}, err
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.text)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	stamp, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*t = stamp
	return nil
}

// check that a Timestamp pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
