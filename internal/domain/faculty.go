package domain

import (
	"github.com/samber/lo"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// Teaching load limits per term.
const (
	MinFacultyCourses = 1
	MaxFacultyCourses = 3
)

// Faculty is a faculty directory entry that owns a teaching schedule.
type Faculty struct {
	firstName    string
	lastName     string
	id           string
	email        string
	passwordHash string
	maxCourses   int
	schedule     *FacultySchedule
}

// NewFaculty validates record. MaxCourses must be within 1-3.
func NewFaculty(record models.FacultyRecord) (*Faculty, error) {
	if err := validateUser(record.FirstName, record.LastName, record.ID, record.Email, record.PasswordHash); err != nil {
		return nil, err
	}
	f := &Faculty{
		firstName:    record.FirstName,
		lastName:     record.LastName,
		id:           record.ID,
		email:        record.Email,
		passwordHash: record.PasswordHash,
		schedule:     NewFacultySchedule(record.ID),
	}
	if err := f.SetMaxCourses(record.MaxCourses); err != nil {
		return nil, err
	}
	return f, nil
}

// SetMaxCourses updates the teaching ceiling.
func (f *Faculty) SetMaxCourses(courses int) error {
	if courses < MinFacultyCourses || courses > MaxFacultyCourses {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid max courses")
	}
	f.maxCourses = courses
	return nil
}

func (f *Faculty) FirstName() string    { return f.firstName }
func (f *Faculty) LastName() string     { return f.lastName }
func (f *Faculty) ID() string           { return f.id }
func (f *Faculty) Email() string        { return f.email }
func (f *Faculty) PasswordHash() string { return f.passwordHash }
func (f *Faculty) MaxCourses() int      { return f.maxCourses }

// Schedule returns the faculty member's teaching schedule.
func (f *Faculty) Schedule() *FacultySchedule { return f.schedule }

// IsOverloaded reports whether more courses are assigned than MaxCourses.
func (f *Faculty) IsOverloaded() bool {
	return f.schedule.NumScheduledCourses() > f.maxCourses
}

// Less orders faculty by last name, first name, then id.
func (f *Faculty) Less(other *Faculty) bool {
	if f.lastName != other.lastName {
		return f.lastName < other.lastName
	}
	if f.firstName != other.firstName {
		return f.firstName < other.firstName
	}
	return f.id < other.id
}

// Record returns the flat snapshot of the faculty member.
func (f *Faculty) Record() models.FacultyRecord {
	return models.FacultyRecord{
		FirstName:    f.firstName,
		LastName:     f.lastName,
		ID:           f.id,
		Email:        f.email,
		PasswordHash: f.passwordHash,
		MaxCourses:   f.maxCourses,
	}
}

// Summary returns the faculty directory row.
func (f *Faculty) Summary() models.FacultySummary {
	return models.FacultySummary{
		FirstName:  f.firstName,
		LastName:   f.lastName,
		ID:         f.id,
		MaxCourses: f.maxCourses,
		Courses:    f.schedule.NumScheduledCourses(),
		Overloaded: f.IsOverloaded(),
	}
}

// FacultySchedule is the set of courses one faculty member teaches. Adding a
// course makes the owner its instructor; removing it clears the instructor.
// The schedule may grow past the owner's MaxCourses.
type FacultySchedule struct {
	facultyID string
	courses   []*Course
}

// NewFacultySchedule returns an empty schedule owned by facultyID.
func NewFacultySchedule(facultyID string) *FacultySchedule {
	return &FacultySchedule{facultyID: facultyID}
}

// AddCourse assigns c after checking duplicates first, then conflicts.
func (s *FacultySchedule) AddCourse(c *Course) error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "course is required")
	}
	for _, existing := range s.courses {
		if existing.IsDuplicate(c) {
			return appErrors.Clone(appErrors.ErrDuplicate, "already assigned "+c.Name())
		}
	}
	for _, existing := range s.courses {
		if err := c.CheckConflict(existing); err != nil {
			return appErrors.Clone(appErrors.ErrConflict, "the course cannot be assigned due to a conflict")
		}
	}
	s.courses = append(s.courses, c)
	c.SetInstructorID(s.facultyID)
	return nil
}

// RemoveCourse unassigns c by identity and reports whether it was present.
func (s *FacultySchedule) RemoveCourse(c *Course) bool {
	for i, existing := range s.courses {
		if existing == c {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			c.SetInstructorID("")
			return true
		}
	}
	return false
}

// Reset unassigns every course.
func (s *FacultySchedule) Reset() {
	for _, c := range s.courses {
		c.SetInstructorID("")
	}
	s.courses = nil
}

// Courses returns the assigned courses in assignment order.
func (s *FacultySchedule) Courses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// NumScheduledCourses returns the number of assigned courses.
func (s *FacultySchedule) NumScheduledCourses() int { return len(s.courses) }

// ScheduledCourses returns one display row per assigned course.
func (s *FacultySchedule) ScheduledCourses() [][]string {
	return lo.Map(s.courses, func(c *Course, _ int) []string { return c.ShortDisplay() })
}
