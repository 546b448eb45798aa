package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("calendar: range end before start")

const dayLayout = "2006-01-02"

// Day is a calendar date in the canonical UTC "YYYY-MM-DD" form. The string
// form sorts and compares chronologically, so interval tests are plain
// string comparisons.
type Day string

// ParseDay validates and canonicalizes a "YYYY-MM-DD" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("calendar: parse day %q: %w", s, err)
	}
	return Day(t.UTC().Format(dayLayout)), nil
}

// DayOf truncates a timestamp to its UTC calendar date.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(dayLayout))
}

// Time returns midnight UTC of the day. Malformed days yield the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) Next() Day {
	return d.AddDays(1)
}

// NightsUntil counts whole nights from d to other; negative when other is
// earlier.
func (d Day) NightsUntil(other Day) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d Day) Before(other Day) bool {
	return d < other
}

func (d Day) String() string {
	return string(d)
}

// InInterval reports whether day falls inside the half-open interval
// [start, end). A checkout day is therefore never part of the stay.
func InInterval(day, start, end Day) bool {
	return start <= day && day < end
}

// Range is an inclusive span of days [From, To].
type Range struct {
	From Day
	To   Day
}

// NewRange parses and validates an inclusive range from raw date strings.
func NewRange(from, to string) (Range, error) {
	f, err := ParseDay(from)
	if err != nil {
		return Range{}, err
	}
	t, err := ParseDay(to)
	if err != nil {
		return Range{}, err
	}
	r := Range{From: f, To: t}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.From == "" || r.To == "" || r.To < r.From {
		return ErrInvalidRange
	}
	return nil
}

// Days returns every day of the range, inclusive on both ends.
func (r Range) Days() []Day {
	if r.Validate() != nil {
		return nil
	}
	out := make([]Day, 0, r.From.NightsUntil(r.To)+1)
	for d := r.From; d <= r.To; d = d.Next() {
		out = append(out, d)
	}
	return out
}

// Overlaps reports whether the half-open interval [start, end) touches any
// day of the inclusive range.
func (r Range) Overlaps(start, end Day) bool {
	return start <= r.To && end > r.From
}
