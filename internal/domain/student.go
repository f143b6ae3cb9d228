package domain

import (
	"strings"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// Credit limits a student may carry per term.
const (
	MinStudentCredits = 3
	MaxStudentCredits = 18
)

// Student is a directory entry that owns a personal schedule.
type Student struct {
	firstName    string
	lastName     string
	id           string
	email        string
	passwordHash string
	maxCredits   int
	schedule     *Schedule
}

// NewStudent validates record. A zero MaxCredits defaults to MaxStudentCredits.
func NewStudent(record models.StudentRecord) (*Student, error) {
	if err := validateUser(record.FirstName, record.LastName, record.ID, record.Email, record.PasswordHash); err != nil {
		return nil, err
	}
	s := &Student{
		firstName:    record.FirstName,
		lastName:     record.LastName,
		id:           record.ID,
		email:        record.Email,
		passwordHash: record.PasswordHash,
		schedule:     NewSchedule(),
	}
	maxCredits := record.MaxCredits
	if maxCredits == 0 {
		maxCredits = MaxStudentCredits
	}
	if err := s.SetMaxCredits(maxCredits); err != nil {
		return nil, err
	}
	return s, nil
}

// validateUser checks the fields shared by students and faculty.
func validateUser(firstName, lastName, id, email, passwordHash string) error {
	if firstName == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid first name")
	}
	if lastName == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid last name")
	}
	if id == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid id")
	}
	if !validEmail(email) {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid email")
	}
	if passwordHash == "" {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid password")
	}
	return nil
}

// validEmail requires an '@' followed later by a '.'.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	return strings.LastIndex(email, ".") > at
}

// SetMaxCredits updates the credit ceiling, which must be within 3-18.
func (s *Student) SetMaxCredits(credits int) error {
	if credits < MinStudentCredits || credits > MaxStudentCredits {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid max credits")
	}
	s.maxCredits = credits
	return nil
}

func (s *Student) FirstName() string    { return s.firstName }
func (s *Student) LastName() string     { return s.lastName }
func (s *Student) ID() string           { return s.id }
func (s *Student) Email() string        { return s.email }
func (s *Student) PasswordHash() string { return s.passwordHash }
func (s *Student) MaxCredits() int      { return s.maxCredits }

// Schedule returns the student's mutable schedule.
func (s *Student) Schedule() *Schedule { return s.schedule }

// Equal compares students by id.
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.id == other.id
}

// CanAdd reports whether c fits the schedule and the credit ceiling.
func (s *Student) CanAdd(c *Course) bool {
	if c == nil || !s.schedule.CanAdd(c) {
		return false
	}
	return s.schedule.Credits()+c.Credits() <= s.maxCredits
}

// Less orders students by last name, first name, then id.
func (s *Student) Less(other *Student) bool {
	if s.lastName != other.lastName {
		return s.lastName < other.lastName
	}
	if s.firstName != other.firstName {
		return s.firstName < other.firstName
	}
	return s.id < other.id
}

// Record returns the flat snapshot of the student.
func (s *Student) Record() models.StudentRecord {
	return models.StudentRecord{
		FirstName:    s.firstName,
		LastName:     s.lastName,
		ID:           s.id,
		Email:        s.email,
		PasswordHash: s.passwordHash,
		MaxCredits:   s.maxCredits,
	}
}

// Summary returns the directory row.
func (s *Student) Summary() models.StudentSummary {
	return models.StudentSummary{FirstName: s.firstName, LastName: s.lastName, ID: s.id}
}
