package kernel

import (
	"fmt"
	"time"

	"orders/internal/pkg/errs"
)

// DateLayout is the ISO-8601 calendar date format used on the wire.
const DateLayout = time.DateOnly

// Date is a calendar date without time of day or zone. The zero value is "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date and rejects impossible days such as February 30th.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a date in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// IsZero reports whether no date was set.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
