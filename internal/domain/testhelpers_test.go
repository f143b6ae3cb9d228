package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
)

func courseRecord(name, section, days string, start, end, enrollmentCap int) models.CourseRecord {
	return models.CourseRecord{
		Name:          name,
		Title:         "Course " + name,
		Section:       section,
		Credits:       3,
		InstructorID:  "jdyoung2",
		EnrollmentCap: enrollmentCap,
		MeetingDays:   days,
		StartTime:     start,
		EndTime:       end,
	}
}

func mustCourse(t *testing.T, record models.CourseRecord) *Course {
	t.Helper()
	c, err := NewCourse(record)
	require.NoError(t, err)
	return c
}

func mustStudent(t *testing.T, id string) *Student {
	t.Helper()
	s, err := NewStudent(models.StudentRecord{
		FirstName:    "First" + id,
		LastName:     "Last" + id,
		ID:           id,
		Email:        id + "@ncsu.edu",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return s
}

func mustStudents(t *testing.T, n int) []*Student {
	t.Helper()
	out := make([]*Student, n)
	for i := range out {
		out[i] = mustStudent(t, fmt.Sprintf("s%02d", i))
	}
	return out
}
