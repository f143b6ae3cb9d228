package models

// CourseRecord is the flat snapshot form of a catalog course.
type CourseRecord struct {
	Name          string `csv:"name" json:"name" mapstructure:"name"`
	Title         string `csv:"title" json:"title" mapstructure:"title"`
	Section       string `csv:"section" json:"section" mapstructure:"section"`
	Credits       int    `csv:"credits" json:"credits" mapstructure:"credits"`
	InstructorID  string `csv:"instructor_id" json:"instructor_id" mapstructure:"instructor_id"`
	EnrollmentCap int    `csv:"enrollment_cap" json:"enrollment_cap" mapstructure:"enrollment_cap"`
	MeetingDays   string `csv:"meeting_days" json:"meeting_days" mapstructure:"meeting_days"`
	StartTime     int    `csv:"start_time" json:"start_time" mapstructure:"start_time"`
	EndTime       int    `csv:"end_time" json:"end_time" mapstructure:"end_time"`
}

// CourseSummary is the catalog row shown to students.
type CourseSummary struct {
	Name      string `json:"name"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Meeting   string `json:"meeting"`
	OpenSeats int    `json:"open_seats"`
}

// CourseDetail is the full view of one offering.
type CourseDetail struct {
	CourseRecord
	Meeting          string `json:"meeting"`
	OpenSeats        int    `json:"open_seats"`
	NumberOnWaitlist int    `json:"number_on_waitlist"`
}

// RollSummary exposes the seat accounting of a course roll. Student ids are
// only filled in for the registrar.
type RollSummary struct {
	Name             string   `json:"name"`
	Section          string   `json:"section"`
	EnrollmentCap    int      `json:"enrollment_cap"`
	OpenSeats        int      `json:"open_seats"`
	NumberOnWaitlist int      `json:"number_on_waitlist"`
	Enrolled         []string `json:"enrolled,omitempty"`
	Waitlist         []string `json:"waitlist,omitempty"`
}
