package services

import "time"

// FormatTimestamp renders a reading time the way the dashboard shows it:
// same-day readings as "Today, 3:04 PM", the previous day as "Yesterday,
// 3:04 PM", anything older with an explicit date.
func FormatTimestamp(t, now time.Time) string {
	t = t.In(now.Location())

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case !t.Before(today):
		return "Today, " + t.Format("3:04 PM")
	case !t.Before(yesterday):
		return "Yesterday, " + t.Format("3:04 PM")
	default:
		return t.Format("Jan 2") + " at " + t.Format("3:04 PM")
	}
}
