package models

// StudentRecord is the flat snapshot form of a directory entry.
type StudentRecord struct {
	FirstName    string `csv:"first_name" json:"first_name"`
	LastName     string `csv:"last_name" json:"last_name"`
	ID           string `csv:"id" json:"id"`
	Email        string `csv:"email" json:"email"`
	PasswordHash string `csv:"password_hash" json:"-"`
	MaxCredits   int    `csv:"max_credits" json:"max_credits"`
}

// StudentSummary is the directory row shown to the registrar.
type StudentSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ID        string `json:"id"`
}

// ScheduleView is a student's committed activities with their credit load.
// Rows holds the short course rows, Activities the long rows of every course
// and event.
type ScheduleView struct {
	StudentID  string     `json:"student_id"`
	Title      string     `json:"title"`
	Credits    int        `json:"credits"`
	Rows       [][]string `json:"rows"`
	Activities [][]string `json:"activities"`
}
