package client

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format every log stores; no time component,
// no timezone.
const DateLayout = "2006-01-02"

// Period is a preset window for historical rollups.
type Period string

const (
	PeriodWeek   Period = "week"   // today minus 6 days through today
	PeriodMonth  Period = "month"  // today minus 29 days through today
	PeriodCustom Period = "custom" // user-chosen range, set via ParseCustomRange
)

// TodayString is the local calendar day, derived once at the moment of load.
func TodayString(now time.Time) string {
	return now.Format(DateLayout)
}

// PresetRange returns the boundary dates for the week and month presets.
// PeriodCustom has no implicit range; the caller applies one explicitly.
func PresetRange(p Period, now time.Time) (start, end time.Time) {
	end = now
	switch p {
	case PeriodWeek:
		start = now.AddDate(0, 0, -6)
	case PeriodMonth:
		start = now.AddDate(0, 0, -29)
	default:
		start = now
	}
	return start, end
}

// ParseCustomRange parses date-only strings in the local zone. Parsing in the
// local zone (rather than as UTC midnight) is what keeps a custom range from
// landing one day off.
func ParseCustomRange(startStr, endStr string, loc *time.Location) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(DateLayout, startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
	}
	end, err = time.ParseInLocation(DateLayout, endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s precedes start date %s", endStr, startStr)
	}
	return start, end, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
