package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form.
const DateLayout = "2006-01-02"

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a plain Gregorian calendar date with no time or zone attached.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date from its parts.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseISODate reads the leading YYYY-MM-DD of an ISO-8601 string such as
// "2024-02-28T19:30:00.123-05:00".
func ParseISODate(value string) (Date, error) {
	if len(value) < len(DateLayout) {
		return Date{}, fmt.Errorf("timeutil: %q is too short for an ISO date", value)
	}
	parsed, err := time.Parse(DateLayout, value[:len(DateLayout)])
	if err != nil {
		return Date{}, fmt.Errorf("timeutil: parse iso date: %w", err)
	}
	return DateOf(parsed), nil
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month (1-12) in year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysInMonth(d.Year, d.Month)
}

// AdvanceOneDay returns the calendar date following d. d must be valid.
func AdvanceOneDay(d Date) Date {
	d.Day++
	if d.Day > DaysInMonth(d.Year, d.Month) {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compact formats the date as YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// MarshalText encodes d as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD prefix.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseISODate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
