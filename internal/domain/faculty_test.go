package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func facultyRecord(id string, maxCourses int) models.FacultyRecord {
	return models.FacultyRecord{
		FirstName:    "First" + id,
		LastName:     "Last" + id,
		ID:           id,
		Email:        id + "@ncsu.edu",
		PasswordHash: "hash",
		MaxCourses:   maxCourses,
	}
}

func mustFaculty(t *testing.T, id string, maxCourses int) *Faculty {
	t.Helper()
	f, err := NewFaculty(facultyRecord(id, maxCourses))
	require.NoError(t, err)
	return f
}

func TestNewFacultyValidatesRecord(t *testing.T) {
	cases := map[string]func(*models.FacultyRecord){
		"first name":   func(r *models.FacultyRecord) { r.FirstName = "" },
		"last name":    func(r *models.FacultyRecord) { r.LastName = "" },
		"id":           func(r *models.FacultyRecord) { r.ID = "" },
		"email":        func(r *models.FacultyRecord) { r.Email = "ashby.ncsu.edu" },
		"password":     func(r *models.FacultyRecord) { r.PasswordHash = "" },
		"no courses":   func(r *models.FacultyRecord) { r.MaxCourses = 0 },
		"four courses": func(r *models.FacultyRecord) { r.MaxCourses = 4 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			record := facultyRecord("ashby", 2)
			mutate(&record)
			_, err := NewFaculty(record)
			assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
		})
	}

	f := mustFaculty(t, "ashby", MaxFacultyCourses)
	assert.Equal(t, 3, f.MaxCourses())
	assert.Equal(t, facultyRecord("ashby", 3), f.Record())
}

func TestFacultyScheduleAssignsInstructor(t *testing.T) {
	f := mustFaculty(t, "ashby", 2)
	csc216 := mustCourse(t, courseRecord("CSC216", "001", "MW", 1330, 1445, 10))
	csc216b := mustCourse(t, courseRecord("CSC216", "002", "TH", 1330, 1445, 10))
	overlap := mustCourse(t, courseRecord("CSC226", "001", "M", 1400, 1500, 10))
	other := mustCourse(t, courseRecord("CSC230", "001", "TH", 800, 915, 10))

	require.NoError(t, f.Schedule().AddCourse(csc216))
	assert.Equal(t, "ashby", csc216.InstructorID())
	assert.True(t, errors.Is(f.Schedule().AddCourse(csc216b), appErrors.ErrDuplicate))
	assert.True(t, errors.Is(f.Schedule().AddCourse(overlap), appErrors.ErrConflict))
	assert.True(t, errors.Is(f.Schedule().AddCourse(nil), appErrors.ErrInvalidArgument))
	assert.Equal(t, "jdyoung2", overlap.InstructorID())

	require.NoError(t, f.Schedule().AddCourse(other))
	assert.Equal(t, 2, f.Schedule().NumScheduledCourses())
	assert.Equal(t, []*Course{csc216, other}, f.Schedule().Courses())
	assert.Equal(t, "CSC230", f.Schedule().ScheduledCourses()[1][0])

	assert.True(t, f.Schedule().RemoveCourse(csc216))
	assert.Empty(t, csc216.InstructorID())
	assert.False(t, f.Schedule().RemoveCourse(csc216))

	f.Schedule().Reset()
	assert.Zero(t, f.Schedule().NumScheduledCourses())
	assert.Empty(t, other.InstructorID())
}

func TestFacultyIsOverloaded(t *testing.T) {
	f := mustFaculty(t, "ashby", 1)
	require.NoError(t, f.Schedule().AddCourse(mustCourse(t, courseRecord("CSC216", "001", "MW", 1330, 1445, 10))))
	assert.False(t, f.IsOverloaded())

	require.NoError(t, f.Schedule().AddCourse(mustCourse(t, courseRecord("CSC230", "001", "TH", 800, 915, 10))))
	assert.True(t, f.IsOverloaded())
	assert.True(t, f.Summary().Overloaded)
	assert.Equal(t, 2, f.Summary().Courses)

	require.NoError(t, f.SetMaxCourses(2))
	assert.False(t, f.IsOverloaded())
}

func TestFacultyOrdering(t *testing.T) {
	a := mustFaculty(t, "a", 1)
	b := mustFaculty(t, "b", 1)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}
