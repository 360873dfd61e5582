package utils

import "time"

// Quota keys and streaks are scoped to the user's local calendar day, not UTC.
// Falls back to a fixed offset when tzdata is unavailable in the container.
func UserLocation(tz string) *time.Location {
	if tz == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return time.Local
}

// LocalDate renders t in loc as YYYY-MM-DD, the canonical day key for
// quota records and last-entry dates.
func LocalDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02")
}

func TodayLocal(loc *time.Location) string {
	return LocalDate(time.Now(), loc)
}

// DayOfYear drives the deterministic daily rotation of fallback content:
// stable across reloads within a day, different the next day.
func DayOfYear(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).YearDay()
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
