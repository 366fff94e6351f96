package database

import "time"

// Clock supplies the instant written into note timestamps.
type Clock func() time.Time

// SystemClock is the default Clock. Timestamps are kept in UTC at microsecond
// precision so they survive the round trip through the DATETIME column.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
