package appointment

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Time is a wall clock time of day with minute precision
type Time struct {
	hour   int
	minute int
}

var (
	Min = Time{hour: 0, minute: 0}
	Max = Time{hour: 23, minute: 59}
)

var (
	_ encoding.TextMarshaler   = Time{}
	_ encoding.TextUnmarshaler = (*Time)(nil)
)

// NewTime validates hour before minute, so when both are invalid the hour
// is reported.
func NewTime(hour, minute int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &RangeError{Field: "hour", Value: hour}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &RangeError{Field: "minutes", Value: minute}
	}
	return Time{hour: hour, minute: minute}, nil
}

// Now reads the local wall clock
func Now() Time {
	return FromClock(time.Now())
}

// FromClock takes hour and minute of t in its own location
func FromClock(t time.Time) Time {
	return Time{hour: t.Hour(), minute: t.Minute()}
}

// ParseTime parses "HH:MM". Integer-looking but out of range parts fail
// with a *RangeError, anything else with ErrMalformedTime.
func ParseTime(s string) (Time, error) {
	hourStr, minuteStr, ok := strings.Cut(s, ":")
	if !ok {
		return Time{}, ErrMalformedTime
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Time{}, ErrMalformedTime
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return Time{}, ErrMalformedTime
	}

	return NewTime(hour, minute)
}

func (t Time) Hour() int   { return t.hour }
func (t Time) Minute() int { return t.minute }

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(data []byte) error {
	parsed, err := ParseTime(string(data))
	if err != nil {
		return fmt.Errorf("invalid time, time=%q: %w", string(data), err)
	}

	*t = parsed
	return nil
}

// Compare returns -1, 0 or +1 ordering by hour, then minute
func (t Time) Compare(other Time) int {
	a, b := t.totalMinutes(), other.totalMinutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t Time) Before(other Time) bool {
	return t.Compare(other) < 0
}

func (t Time) After(other Time) bool {
	return t.Compare(other) > 0
}

// IsAtOrBefore reports t <= other
func (t Time) IsAtOrBefore(other Time) bool {
	return t.Compare(other) <= 0
}

// AddMinutes saturates at Max instead of wrapping into the next day
func (t Time) AddMinutes(n int) Time {
	return fromTotalMinutes(t.totalMinutes() + clampOffset(n))
}

// SubtractMinutes saturates at Min instead of wrapping into the previous day
func (t Time) SubtractMinutes(n int) Time {
	return fromTotalMinutes(t.totalMinutes() - clampOffset(n))
}

// On places t on the calendar day of day, in day's location
func (t Time) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, day.Location())
}

func (t Time) totalMinutes() int {
	return t.hour*60 + t.minute
}

// clampOffset keeps huge offsets from overflowing; anything beyond a day
// saturates anyway.
func clampOffset(n int) int {
	switch {
	case n > minutesPerDay:
		return minutesPerDay
	case n < -minutesPerDay:
		return -minutesPerDay
	}
	return n
}

func fromTotalMinutes(total int) Time {
	switch {
	case total < 0:
		return Min
	case total >= minutesPerDay:
		return Max
	}
	return Time{hour: total / 60, minute: total % 60}
}
