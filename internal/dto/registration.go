package dto

// AddCourseRequest is the registrar payload for a new catalog offering.
type AddCourseRequest struct {
	Name          string `json:"name" validate:"required,min=4,max=8"`
	Title         string `json:"title" validate:"required"`
	Section       string `json:"section" validate:"required,len=3,numeric"`
	Credits       int    `json:"credits" validate:"min=1,max=5"`
	InstructorID  string `json:"instructor_id"`
	EnrollmentCap int    `json:"enrollment_cap" validate:"min=10,max=250"`
	MeetingDays   string `json:"meeting_days" validate:"required"`
	StartTime     int    `json:"start_time" validate:"min=0,max=2359"`
	EndTime       int    `json:"end_time" validate:"min=0,max=2359"`
}

// SetEnrollmentCapRequest changes the seat limit of one course.
type SetEnrollmentCapRequest struct {
	EnrollmentCap int `json:"enrollment_cap" validate:"min=10,max=250"`
}

// EnrollRequest names the offering the current student wants.
type EnrollRequest struct {
	CourseName string `json:"course_name" validate:"required"`
	Section    string `json:"section" validate:"required,len=3"`
}

// AddEventRequest blocks out personal time on the current student's schedule.
type AddEventRequest struct {
	Title       string `json:"title" validate:"required"`
	MeetingDays string `json:"meeting_days" validate:"required"`
	StartTime   int    `json:"start_time" validate:"min=0,max=2359"`
	EndTime     int    `json:"end_time" validate:"min=0,max=2359,gtefield=StartTime"`
	Details     string `json:"details"`
}

// ScheduleTitleRequest renames the current student's schedule.
type ScheduleTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// AddStudentRequest registers a student in the directory.
type AddStudentRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	ID             string `json:"id" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	RepeatPassword string `json:"repeat_password" validate:"required"`
	MaxCredits     int    `json:"max_credits" validate:"omitempty,min=3,max=18"`
}

// AddFacultyRequest registers a faculty member in the faculty directory.
type AddFacultyRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	ID             string `json:"id" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	RepeatPassword string `json:"repeat_password" validate:"required"`
	MaxCourses     int    `json:"max_courses" validate:"required,min=1,max=3"`
}

// AssignCourseRequest names the offering a faculty member will teach.
type AssignCourseRequest struct {
	CourseName string `json:"course_name" validate:"required"`
	Section    string `json:"section" validate:"required,len=3"`
}

// EnrollmentEventQuery filters the audit trail listing.
type EnrollmentEventQuery struct {
	StudentID  string `form:"student_id"`
	CourseName string `form:"course_name"`
	Section    string `form:"section"`
	Status     string `form:"status" validate:"omitempty,oneof=ENROLLED WAITLISTED DROPPED PROMOTED"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"page_size" validate:"omitempty,min=1,max=200"`
}
