package testutil

import (
	"fmt"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// MustDate builds a calendar date or panics when it does not exist.
func MustDate(year, month, day int) timeutil.Date {
	d := timeutil.NewDate(year, month, day)
	if !d.Valid() {
		panic(fmt.Sprintf("invalid date %04d-%02d-%02d", year, month, day))
	}
	return d
}
