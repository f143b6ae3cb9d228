package models

import "time"

// EnrollmentStatus represents the outcome recorded for an enrollment event.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusEnrolled   EnrollmentStatus = "ENROLLED"
	EnrollmentStatusWaitlisted EnrollmentStatus = "WAITLISTED"
	EnrollmentStatusDropped    EnrollmentStatus = "DROPPED"
	EnrollmentStatusPromoted   EnrollmentStatus = "PROMOTED"
)

// EnrollmentEvent is one entry of the enrollment audit trail.
type EnrollmentEvent struct {
	ID         string           `db:"id" json:"id"`
	StudentID  string           `db:"student_id" json:"student_id"`
	CourseName string           `db:"course_name" json:"course_name"`
	Section    string           `db:"section" json:"section"`
	Status     EnrollmentStatus `db:"status" json:"status"`
	OpenSeats  int              `db:"open_seats" json:"open_seats"`
	Waitlisted int              `db:"waitlisted" json:"waitlisted"`
	OccurredAt time.Time        `db:"occurred_at" json:"occurred_at"`
}

// EnrollmentEventFilter narrows audit trail queries.
type EnrollmentEventFilter struct {
	StudentID  string
	CourseName string
	Section    string
	Status     EnrollmentStatus
	Page       int
	PageSize   int
}

// EnrollmentResult reports where a student landed after an enroll request.
type EnrollmentResult struct {
	CourseName string           `json:"course_name"`
	Section    string           `json:"section"`
	Status     EnrollmentStatus `json:"status"`
	OpenSeats  int              `json:"open_seats"`
	Waitlisted int              `json:"number_on_waitlist"`
}

// DropResult reports the outcome of a drop request.
type DropResult struct {
	CourseName string  `json:"course_name"`
	Section    string  `json:"section"`
	Removed    bool    `json:"removed"`
	PromotedID *string `json:"promoted_student_id,omitempty"`
}
