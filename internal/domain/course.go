package domain

import (
	"strconv"
	"unicode"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

const (
	minNameLength = 4
	maxNameLength = 8
	sectionLength = 3
	minCredits    = 1
	maxCredits    = 5
)

// Course is a catalog offering. It owns the Roll that tracks its seats.
type Course struct {
	name         string
	title        string
	section      string
	credits      int
	instructorID string
	meeting      Meeting
	roll         *Roll
}

// NewCourse validates record and builds a course with a fresh roll.
func NewCourse(record models.CourseRecord) (*Course, error) {
	c := &Course{}
	if err := c.setTitle(record.Title); err != nil {
		return nil, err
	}
	meeting, err := newMeeting(record.MeetingDays, record.StartTime, record.EndTime, courseDayCodes, true)
	if err != nil {
		return nil, err
	}
	c.meeting = meeting
	if err := c.setName(record.Name); err != nil {
		return nil, err
	}
	if err := c.setSection(record.Section); err != nil {
		return nil, err
	}
	if err := c.SetCredits(record.Credits); err != nil {
		return nil, err
	}
	c.instructorID = record.InstructorID

	roll, err := newRoll(c, record.EnrollmentCap)
	if err != nil {
		return nil, err
	}
	c.roll = roll
	return c, nil
}

func (c *Course) setTitle(title string) error {
	if title == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid title")
	}
	c.title = title
	return nil
}

func (c *Course) setName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid course name")
	}
	if err := ValidateCourseName(name); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "invalid course name")
	}
	c.name = name
	return nil
}

func (c *Course) setSection(section string) error {
	if len(section) != sectionLength {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid section")
	}
	for _, r := range section {
		if !unicode.IsDigit(r) {
			return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid section")
		}
	}
	c.section = section
	return nil
}

// SetCredits updates the credit hours, which must be within 1-5.
func (c *Course) SetCredits(credits int) error {
	if credits < minCredits || credits > maxCredits {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid credits")
	}
	c.credits = credits
	return nil
}

// SetInstructorID assigns the teaching faculty member. Empty means unassigned.
func (c *Course) SetInstructorID(id string) {
	c.instructorID = id
}

// Name returns the course name such as "CSC216".
func (c *Course) Name() string { return c.name }

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// Section returns the three digit section code.
func (c *Course) Section() string { return c.section }

// Credits returns the credit hours.
func (c *Course) Credits() int { return c.credits }

// InstructorID returns the assigned instructor, if any.
func (c *Course) InstructorID() string { return c.instructorID }

// Meeting returns the weekly meeting slot.
func (c *Course) Meeting() Meeting { return c.meeting }

// Roll returns the enrollment roll for the course.
func (c *Course) Roll() *Roll { return c.roll }

// CheckConflict fails with ErrConflict when other overlaps this course.
func (c *Course) CheckConflict(other Activity) error {
	return CheckConflict(c, other)
}

// ShortDisplay returns name, section, title, meeting string and open seats.
func (c *Course) ShortDisplay() []string {
	return []string{c.name, c.section, c.title, c.meeting.String(), strconv.Itoa(c.roll.OpenSeats())}
}

// LongDisplay returns the detailed catalog row.
func (c *Course) LongDisplay() []string {
	return []string{c.name, c.section, c.title, strconv.Itoa(c.credits), c.instructorID, c.meeting.String(), ""}
}

// IsDuplicate reports whether other is a course with the same name.
func (c *Course) IsDuplicate(other Activity) bool {
	o, ok := other.(*Course)
	return ok && o != nil && o.name == c.name
}

// SameOffering reports whether other has the same name and section.
func (c *Course) SameOffering(name, section string) bool {
	return c.name == name && c.section == section
}

// Less orders courses by name, then section.
func (c *Course) Less(other *Course) bool {
	if c.name != other.name {
		return c.name < other.name
	}
	return c.section < other.section
}

// Record returns the flat snapshot of the course.
func (c *Course) Record() models.CourseRecord {
	return models.CourseRecord{
		Name:          c.name,
		Title:         c.title,
		Section:       c.section,
		Credits:       c.credits,
		InstructorID:  c.instructorID,
		EnrollmentCap: c.roll.EnrollmentCap(),
		MeetingDays:   c.meeting.Days,
		StartTime:     c.meeting.Start,
		EndTime:       c.meeting.End,
	}
}

// Summary returns the catalog row.
func (c *Course) Summary() models.CourseSummary {
	return models.CourseSummary{
		Name:      c.name,
		Section:   c.section,
		Title:     c.title,
		Meeting:   c.meeting.String(),
		OpenSeats: c.roll.OpenSeats(),
	}
}
