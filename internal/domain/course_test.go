package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func TestNewCourseValidation(t *testing.T) {
	base := courseRecord("CSC216", "001", "MW", 1330, 1445, 10)

	bad := []struct {
		name   string
		mutate func(r *models.CourseRecord)
	}{
		{"short name", func(r *models.CourseRecord) { r.Name = "E11" }},
		{"long name", func(r *models.CourseRecord) { r.Name = "ABCDE1234" }},
		{"grammar", func(r *models.CourseRecord) { r.Name = "CSC21A" }},
		{"section letters", func(r *models.CourseRecord) { r.Section = "0A1" }},
		{"section length", func(r *models.CourseRecord) { r.Section = "01" }},
		{"empty title", func(r *models.CourseRecord) { r.Title = "" }},
		{"bad days", func(r *models.CourseRecord) { r.MeetingDays = "X" }},
		{"zero credits", func(r *models.CourseRecord) { r.Credits = 0 }},
		{"six credits", func(r *models.CourseRecord) { r.Credits = 6 }},
		{"cap low", func(r *models.CourseRecord) { r.EnrollmentCap = 9 }},
		{"cap high", func(r *models.CourseRecord) { r.EnrollmentCap = 251 }},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			tc.mutate(&r)
			_, err := NewCourse(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
		})
	}

	c := mustCourse(t, base)
	assert.Equal(t, base, c.Record())
	assert.Equal(t, 10, c.Roll().EnrollmentCap())
}

func TestCourseDisplays(t *testing.T) {
	c := mustCourse(t, courseRecord("CSC216", "001", "MW", 1330, 1445, 10))
	assert.Equal(t, []string{"CSC216", "001", "Course CSC216", "MW 1:30PM-2:45PM", "10"}, c.ShortDisplay())
	assert.Equal(t, []string{"CSC216", "001", "Course CSC216", "3", "jdyoung2", "MW 1:30PM-2:45PM", ""}, c.LongDisplay())

	e := mustEvent(t, "Exercise", "SU", 800, 900)
	assert.Equal(t, []string{"", "", "Exercise", "SU 8:00AM-9:00AM", ""}, e.ShortDisplay())
}

func TestCourseDuplicateAndOrdering(t *testing.T) {
	a := mustCourse(t, courseRecord("CSC216", "001", "MW", 1330, 1445, 10))
	b := mustCourse(t, courseRecord("CSC216", "002", "TH", 1330, 1445, 10))
	c := mustCourse(t, courseRecord("CSC226", "001", "TH", 900, 1015, 10))

	assert.True(t, a.IsDuplicate(b))
	assert.False(t, a.IsDuplicate(c))
	assert.False(t, a.IsDuplicate(mustEvent(t, "CSC216", "M", 800, 900)))
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.SameOffering("CSC216", "001"))
}
