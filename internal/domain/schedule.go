package domain

import (
	"github.com/samber/lo"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// DefaultScheduleTitle is restored by Reset.
const DefaultScheduleTitle = "My Schedule"

// Schedule is the ordered set of activities a student is committed to.
// No two activities share a name and none overlap in time.
type Schedule struct {
	title      string
	activities []Activity
}

// NewSchedule returns an empty schedule with the default title.
func NewSchedule() *Schedule {
	return &Schedule{title: DefaultScheduleTitle}
}

// Title returns the schedule title.
func (s *Schedule) Title() string { return s.title }

// SetTitle renames the schedule.
func (s *Schedule) SetTitle(title string) error {
	if title == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid title")
	}
	s.title = title
	return nil
}

// AddActivity appends a after checking duplicates first, then conflicts.
func (s *Schedule) AddActivity(a Activity) error {
	if a == nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "activity is required")
	}
	for _, existing := range s.activities {
		if existing.IsDuplicate(a) {
			return appErrors.Clone(appErrors.ErrDuplicate, "you are already enrolled in "+a.Title())
		}
	}
	for _, existing := range s.activities {
		if err := a.CheckConflict(existing); err != nil {
			return err
		}
	}
	s.activities = append(s.activities, a)
	return nil
}

// AddCourse commits c into the schedule.
func (s *Schedule) AddCourse(c *Course) error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "course is required")
	}
	return s.AddActivity(c)
}

// RemoveActivity removes a by identity and reports whether it was present.
func (s *Schedule) RemoveActivity(a Activity) bool {
	for i, existing := range s.activities {
		if existing == a {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCourse removes c by identity and reports whether it was present.
func (s *Schedule) RemoveCourse(c *Course) bool {
	if c == nil {
		return false
	}
	return s.RemoveActivity(c)
}

// CanAdd runs the AddActivity checks without mutating the schedule.
func (s *Schedule) CanAdd(a Activity) bool {
	if a == nil || isNilActivity(a) {
		return false
	}
	for _, existing := range s.activities {
		if existing.IsDuplicate(a) || a.CheckConflict(existing) != nil {
			return false
		}
	}
	return true
}

// Credits sums the credit hours of scheduled courses. Events carry none.
func (s *Schedule) Credits() int {
	return lo.SumBy(s.Courses(), func(c *Course) int { return c.Credits() })
}

// Courses returns the scheduled courses in schedule order.
func (s *Schedule) Courses() []*Course {
	return lo.FilterMap(s.activities, func(a Activity, _ int) (*Course, bool) {
		c, ok := a.(*Course)
		return c, ok
	})
}

// Activities returns a copy of every scheduled activity.
func (s *Schedule) Activities() []Activity {
	out := make([]Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// ScheduledCourses returns one display row per activity.
func (s *Schedule) ScheduledCourses() [][]string {
	return lo.Map(s.activities, func(a Activity, _ int) []string { return a.ShortDisplay() })
}

// Size returns the number of scheduled activities.
func (s *Schedule) Size() int { return len(s.activities) }

// Reset clears every activity and restores the default title.
func (s *Schedule) Reset() {
	s.activities = nil
	s.title = DefaultScheduleTitle
}

func isNilActivity(a Activity) bool {
	switch v := a.(type) {
	case *Course:
		return v == nil
	case *Event:
		return v == nil
	}
	return false
}
