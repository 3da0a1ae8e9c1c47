package bslog

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatRelative renders t relative to now, e.g. "3 months from now" or
// "2 days ago", for demo output and log lines annotating an effective
// period's boundaries. Adapted from atime/time.go's
// FormatDateTimeAgo/FormatDateTimeRelative, trimmed to the two concrete
// time.Time arguments this module ever has on hand (the source's
// version accepts interface{} to tolerate *time.Time and nil, a
// flexibility this module's callers don't need).
func FormatRelative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
