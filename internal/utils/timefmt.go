package utils

import (
	"fmt"
	"time"
)

// FormatTimeRemaining renders the time left until deadline as "<h>h <m>m".
// Hours are floored; minutes are floored from the remainder, which keeps the
// sign of the difference. Past deadlines therefore come out negative, e.g.
// 30 minutes overdue is "-1h -30m". Seconds are ignored.
func FormatTimeRemaining(deadline, now time.Time) string {
	diff := deadline.Sub(now).Milliseconds()
	const hourMs = int64(time.Hour / time.Millisecond)
	const minuteMs = int64(time.Minute / time.Millisecond)

	hours := floorDiv(diff, hourMs)
	minutes := floorDiv(diff%hourMs, minuteMs)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FormatDateTime renders timestamps the way the dashboards show them
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006, 03:04 PM")
}
