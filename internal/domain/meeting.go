package domain

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// ArrangedDays is the day code for an activity with no fixed meeting time.
const ArrangedDays = "A"

const (
	courseDayCodes = "MTWHF"
	eventDayCodes  = "UMTWHFS"
	upperHour      = 24
	upperMinute    = 60
)

// Meeting is a weekday set plus a closed [Start, End] window in military HHMM time.
type Meeting struct {
	Days  string `json:"days"`
	Start int    `json:"start_time"`
	End   int    `json:"end_time"`
}

// IsArranged reports whether the meeting has no fixed slot.
func (m Meeting) IsArranged() bool {
	return m.Days == ArrangedDays
}

// String renders the meeting as "MW 1:30PM-2:45PM" or "Arranged".
func (m Meeting) String() string {
	if m.IsArranged() {
		return "Arranged"
	}
	return fmt.Sprintf("%s %s-%s", m.Days, clock(m.Start), clock(m.End))
}

func clock(t int) string {
	hour, minute := t/100, t%100
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}

// newMeeting validates a meeting against the allowed day codes. allowArranged
// permits the "A" code, which then requires a zero time window.
func newMeeting(days string, start, end int, allowed string, allowArranged bool) (Meeting, error) {
	invalid := appErrors.Clone(appErrors.ErrInvalidArgument, "invalid meeting days and times")
	if days == "" {
		return Meeting{}, invalid
	}
	if days == ArrangedDays {
		if !allowArranged || start != 0 || end != 0 {
			return Meeting{}, invalid
		}
		return Meeting{Days: days}, nil
	}

	seen := make(map[rune]bool, len(days))
	for _, day := range days {
		if !strings.ContainsRune(allowed, day) || seen[day] {
			return Meeting{}, invalid
		}
		seen[day] = true
	}
	if !validClock(start) || !validClock(end) || start > end {
		return Meeting{}, invalid
	}
	return Meeting{Days: days, Start: start, End: end}, nil
}

func validClock(t int) bool {
	if t < 0 {
		return false
	}
	return t/100 < upperHour && t%100 < upperMinute
}

// CheckConflict returns ErrConflict when a and b share a weekday with
// overlapping windows. Boundary minutes count as overlap; Arranged never conflicts.
func CheckConflict(a, b Activity) error {
	if a == nil || b == nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "activity is required")
	}
	ma, mb := a.Meeting(), b.Meeting()
	if ma.IsArranged() || mb.IsArranged() {
		return nil
	}
	for _, day := range ma.Days {
		if !strings.ContainsRune(mb.Days, day) {
			continue
		}
		if (ma.Start <= mb.Start && mb.Start <= ma.End) || (mb.Start <= ma.Start && ma.Start <= mb.End) {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("%s conflicts with %s", a.Title(), b.Title()))
		}
	}
	return nil
}
