package models

// FacultyRecord is the flat snapshot form of a faculty directory entry.
type FacultyRecord struct {
	FirstName    string `csv:"first_name" json:"first_name"`
	LastName     string `csv:"last_name" json:"last_name"`
	ID           string `csv:"id" json:"id"`
	Email        string `csv:"email" json:"email"`
	PasswordHash string `csv:"password_hash" json:"-"`
	MaxCourses   int    `csv:"max_courses" json:"max_courses"`
}

// FacultySummary is the faculty directory row shown to the registrar.
type FacultySummary struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ID         string `json:"id"`
	MaxCourses int    `json:"max_courses"`
	Courses    int    `json:"courses"`
	Overloaded bool   `json:"overloaded"`
}

// FacultyScheduleView lists the courses a faculty member teaches.
type FacultyScheduleView struct {
	FacultyID  string     `json:"faculty_id"`
	MaxCourses int        `json:"max_courses"`
	Courses    int        `json:"courses"`
	Overloaded bool       `json:"overloaded"`
	Rows       [][]string `json:"rows"`
}
