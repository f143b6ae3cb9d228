package domain

import (
	"errors"

	"github.com/noah-isme/pack-scheduler-api/pkg/collections"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// Enrollment bounds for a course roll.
const (
	MinEnrollment = 10
	MaxEnrollment = 250
	WaitlistSize  = 10
)

// Placement is where Enroll put a student.
type Placement string

const (
	PlacementEnrolled   Placement = "ENROLLED"
	PlacementWaitlisted Placement = "WAITLISTED"
)

// Roll tracks the enrolled students and FIFO waitlist of one course.
// It is not safe for concurrent use.
type Roll struct {
	course        *Course
	enrollmentCap int
	enrolled      *collections.BoundedList[*Student]
	waitlist      *collections.Queue[*Student]
}

func sameStudent(a, b *Student) bool { return a.Equal(b) }

// NewRoll builds an empty roll for course with the given cap.
func NewRoll(course *Course, enrollmentCap int) (*Roll, error) {
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "course is required")
	}
	return newRoll(course, enrollmentCap)
}

func newRoll(course *Course, enrollmentCap int) (*Roll, error) {
	if enrollmentCap < MinEnrollment || enrollmentCap > MaxEnrollment {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid enrollment cap")
	}
	enrolled, err := collections.NewBoundedList(enrollmentCap, sameStudent)
	if err != nil {
		return nil, err
	}
	waitlist, err := newWaitlist()
	if err != nil {
		return nil, err
	}
	return &Roll{course: course, enrollmentCap: enrollmentCap, enrolled: enrolled, waitlist: waitlist}, nil
}

func newWaitlist() (*collections.Queue[*Student], error) {
	return collections.NewQueue(WaitlistSize, sameStudent)
}

// Course returns the course that owns the roll.
func (r *Roll) Course() *Course { return r.course }

// EnrollmentCap returns the maximum number of seated students.
func (r *Roll) EnrollmentCap() int { return r.enrollmentCap }

// SetEnrollmentCap changes the cap. It must stay within bounds and cannot
// drop below the number already enrolled.
func (r *Roll) SetEnrollmentCap(n int) error {
	if n < MinEnrollment || n > MaxEnrollment {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid enrollment cap")
	}
	if n < r.enrolled.Size() {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "enrollment cap is below current enrollment")
	}
	if err := r.enrolled.SetCapacity(n); err != nil {
		return err
	}
	r.enrollmentCap = n
	return nil
}

// OpenSeats returns the number of free seats.
func (r *Roll) OpenSeats() int {
	return r.enrollmentCap - r.enrolled.Size()
}

// NumberOnWaitlist returns the waitlist length.
func (r *Roll) NumberOnWaitlist() int {
	return r.waitlist.Size()
}

// IsEnrolled reports whether s holds a seat.
func (r *Roll) IsEnrolled(s *Student) bool {
	return s != nil && r.enrolled.Contains(s)
}

// IsWaitlisted reports whether s is waiting for a seat.
func (r *Roll) IsWaitlisted(s *Student) bool {
	return s != nil && r.waitlist.Contains(s)
}

// Enrolled returns the seated students in seating order.
func (r *Roll) Enrolled() []*Student { return r.enrolled.Values() }

// Waitlist returns the waitlisted students front to back.
func (r *Roll) Waitlist() []*Student { return r.waitlist.Values() }

// Enroll seats s when a seat is open and the course fits their schedule.
// A schedule conflict or duplicate sends s to the waitlist even when a seat
// is free.
func (r *Roll) Enroll(s *Student) (Placement, error) {
	if s == nil {
		return "", appErrors.Clone(appErrors.ErrInvalidArgument, "student is required")
	}
	if r.enrolled.Contains(s) {
		return "", appErrors.Clone(appErrors.ErrInvalidArgument, "student is already enrolled")
	}

	if r.OpenSeats() > 0 {
		err := s.Schedule().AddCourse(r.course)
		switch {
		case err == nil:
			if err := r.seat(s); err != nil {
				return "", err
			}
			return PlacementEnrolled, nil
		case errors.Is(err, appErrors.ErrConflict), errors.Is(err, appErrors.ErrDuplicate):
		default:
			return "", err
		}
	}

	if err := r.addToWaitlist(s); err != nil {
		return "", err
	}
	return PlacementWaitlisted, nil
}

// seat appends s to the enrolled list once the course is in their schedule.
func (r *Roll) seat(s *Student) error {
	if err := r.enrolled.Append(s); err != nil {
		s.Schedule().RemoveCourse(r.course)
		return err
	}
	if r.waitlist.Contains(s) {
		r.rebuildWaitlist(s)
	}
	return nil
}

func (r *Roll) addToWaitlist(s *Student) error {
	if r.waitlist.Size() >= WaitlistSize {
		return appErrors.Clone(appErrors.ErrCapacityExceeded, "course and waitlist are full")
	}
	if r.waitlist.Contains(s) {
		return appErrors.Clone(appErrors.ErrDuplicate, "student is already on the waitlist")
	}
	return r.waitlist.Enqueue(s)
}

// Drop removes s from the roll. Vacating a seat promotes the earliest
// waitlisted student whose schedule accepts the course. Dropping a student
// the roll does not know is a no-op. The promoted student, if any, is returned.
func (r *Roll) Drop(s *Student) (*Student, error) {
	if s == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "student is required")
	}
	if idx := r.enrolled.IndexOf(s); idx >= 0 {
		if _, err := r.enrolled.Remove(idx); err != nil {
			return nil, err
		}
		return r.promote(), nil
	}
	if r.waitlist.Contains(s) {
		r.rebuildWaitlist(s)
	}
	return nil, nil
}

// promote seats the first waitlisted student whose schedule accepts the
// course; any skipped head keeps its place at the front of the waitlist.
func (r *Roll) promote() *Student {
	for _, candidate := range r.waitlist.Values() {
		if !candidate.Schedule().CanAdd(r.course) {
			continue
		}
		if err := candidate.Schedule().AddCourse(r.course); err != nil {
			continue
		}
		if err := r.seat(candidate); err != nil {
			return nil
		}
		return candidate
	}
	return nil
}

// rebuildWaitlist replaces the waitlist with a fresh queue holding every
// student except skip, in original order. It reports whether skip was seen.
func (r *Roll) rebuildWaitlist(skip *Student) bool {
	fresh, err := newWaitlist()
	if err != nil {
		return false
	}
	found := false
	for _, s := range r.waitlist.Values() {
		if skip != nil && s.Equal(skip) {
			found = true
			continue
		}
		_ = fresh.Enqueue(s)
	}
	r.waitlist = fresh
	return found
}

// CanEnroll reports whether s could join the roll or its waitlist. It does
// not consult the student's schedule, so a later Enroll may still waitlist s.
func (r *Roll) CanEnroll(s *Student) bool {
	if s == nil {
		return false
	}
	if r.OpenSeats() == 0 && r.waitlist.Size() >= WaitlistSize {
		return false
	}
	if r.enrolled.Contains(s) {
		return false
	}
	fresh, err := newWaitlist()
	if err != nil {
		return false
	}
	found := false
	for _, w := range r.waitlist.Values() {
		if w.Equal(s) {
			found = true
		}
		_ = fresh.Enqueue(w)
	}
	r.waitlist = fresh
	return !found
}
