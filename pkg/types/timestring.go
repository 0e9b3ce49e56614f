package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the canonical HH:MM representation (24-hour clock).
const timeLayout = "15:04"

// ErrInvalidTimeString is returned when a value does not parse as HH:MM.
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString is a wall-clock time of day in "HH:MM" form.
// It carries no date and no timezone.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates s as HH:MM.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate reports whether the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes returns the time shifted forward by n minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(n) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare lexicographically, which matches HH:MM ordering
// for well-formed inputs.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
