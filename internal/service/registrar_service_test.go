package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/pkg/config"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func enroll(t *testing.T, f *registrarFixture, studentID, course string) *models.EnrollmentResult {
	t.Helper()
	res, err := f.registrar.Enroll(context.Background(), studentID, dto.EnrollRequest{CourseName: course, Section: "001"})
	require.NoError(t, err)
	return res
}

func eventStatuses(f *registrarFixture) []string {
	return lo.Map(f.events.snapshot(), func(e models.EnrollmentEvent, _ int) string {
		return e.StudentID + ":" + string(e.Status)
	})
}

func TestRegistrarLogin(t *testing.T) {
	f := newTestRegistrar(t, 1)
	ctx := context.Background()

	res, err := f.registrar.Login(ctx, models.LoginRequest{ID: "registrar", Password: "Regi5tr@r"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRegistrar, res.User.Role)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := f.registrar.tokens.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "registrar", claims.UserID)

	res, err = f.registrar.Login(ctx, models.LoginRequest{ID: "s00", Password: "pw-s00"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, res.User.Role)
	assert.Equal(t, "s00@ncsu.edu", res.User.Email)

	_, err = f.registrar.Login(ctx, models.LoginRequest{ID: "registrar", Password: "nope"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
	_, err = f.registrar.Login(ctx, models.LoginRequest{ID: "ghost", Password: "nope"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
	_, err = f.registrar.Login(ctx, models.LoginRequest{ID: "s00"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestNewRegistrarRequiresAccount(t *testing.T) {
	f := newTestRegistrar(t, 0)
	_, err := NewRegistrar(testRegistrarConfig, RegistrarDeps{Catalog: f.catalog})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = NewRegistrar(config.RegistrarConfig{ID: "registrar"}, RegistrarDeps{Catalog: f.catalog, Directory: f.directory, Faculty: f.faculty, Tokens: newTestTokens(t)})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}

func TestRegistrarEnrollFillsSeatsThenWaitlist(t *testing.T) {
	f := newTestRegistrar(t, 12)

	for i := 0; i < 10; i++ {
		res := enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
		assert.Equal(t, models.EnrollmentStatusEnrolled, res.Status)
	}
	res := enroll(t, f, "s10", "CSC216")
	assert.Equal(t, models.EnrollmentStatusWaitlisted, res.Status)
	assert.Equal(t, 0, res.OpenSeats)
	assert.Equal(t, 1, res.Waitlisted)

	view, err := f.registrar.Schedule("s00")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Credits)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "CSC216", view.Rows[0][0])

	waiting, err := f.registrar.Schedule("s10")
	require.NoError(t, err)
	assert.Empty(t, waiting.Rows)

	_, err = f.registrar.Enroll(context.Background(), "s10", dto.EnrollRequest{CourseName: "CSC216", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrDuplicate))
	_, err = f.registrar.Enroll(context.Background(), "s00", dto.EnrollRequest{CourseName: "CSC216", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestRegistrarEnrollGatesOnScheduleAndLookup(t *testing.T) {
	f := newTestRegistrar(t, 1)
	enroll(t, f, "s00", "CSC216")

	_, err := f.registrar.Enroll(context.Background(), "s00", dto.EnrollRequest{CourseName: "CSC230", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))

	_, err = f.registrar.Enroll(context.Background(), "ghost", dto.EnrollRequest{CourseName: "CSC230", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = f.registrar.Enroll(context.Background(), "s00", dto.EnrollRequest{CourseName: "CSC999", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = f.registrar.Enroll(context.Background(), "s00", dto.EnrollRequest{CourseName: "CSC230"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestRegistrarEnrollRejectsWhenWaitlistFull(t *testing.T) {
	f := newTestRegistrar(t, 21)
	for i := 0; i < 20; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
	}
	_, err := f.registrar.Enroll(context.Background(), "s20", dto.EnrollRequest{CourseName: "CSC216", Section: "001"})
	assert.True(t, errors.Is(err, appErrors.ErrCapacityExceeded))
}

func TestRegistrarDropPromotesFromWaitlist(t *testing.T) {
	f := newTestRegistrar(t, 12)
	for i := 0; i < 12; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
	}

	res, err := f.registrar.Drop(context.Background(), "s03", "CSC216", "001")
	require.NoError(t, err)
	assert.True(t, res.Removed)
	require.NotNil(t, res.PromotedID)
	assert.Equal(t, "s10", *res.PromotedID)

	dropped, err := f.registrar.Schedule("s03")
	require.NoError(t, err)
	assert.Empty(t, dropped.Rows)
	promoted, err := f.registrar.Schedule("s10")
	require.NoError(t, err)
	assert.Len(t, promoted.Rows, 1)

	roll, err := f.registrar.CourseRoll("CSC216", "001", true)
	require.NoError(t, err)
	assert.Equal(t, 0, roll.OpenSeats)
	assert.Equal(t, []string{"s11"}, roll.Waitlist)
	assert.Contains(t, roll.Enrolled, "s10")
	assert.NotContains(t, roll.Enrolled, "s03")
}

func TestRegistrarDropAbsentStudentIsNoop(t *testing.T) {
	f := newTestRegistrar(t, 1)
	res, err := f.registrar.Drop(context.Background(), "s00", "CSC216", "001")
	require.NoError(t, err)
	assert.False(t, res.Removed)
	assert.Nil(t, res.PromotedID)
}

func TestRegistrarResetScheduleDropsEveryCourse(t *testing.T) {
	f := newTestRegistrar(t, 1)
	enroll(t, f, "s00", "CSC216")
	enroll(t, f, "s00", "CSC226")
	_, err := f.registrar.SetScheduleTitle("s00", dto.ScheduleTitleRequest{Title: "Spring"})
	require.NoError(t, err)

	require.NoError(t, f.registrar.ResetSchedule(context.Background(), "s00"))
	view, err := f.registrar.Schedule("s00")
	require.NoError(t, err)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "My Schedule", view.Title)

	for _, name := range []string{"CSC216", "CSC226"} {
		roll, err := f.registrar.CourseRoll(name, "001", false)
		require.NoError(t, err)
		assert.Equal(t, 10, roll.OpenSeats)
		assert.Nil(t, roll.Enrolled)
	}
}

func TestRegistrarEventsAndTitle(t *testing.T) {
	f := newTestRegistrar(t, 1)
	enroll(t, f, "s00", "CSC216")

	view, err := f.registrar.AddEvent("s00", dto.AddEventRequest{Title: "Gym", MeetingDays: "SU", StartTime: 900, EndTime: 1000, Details: "weights"})
	require.NoError(t, err)
	require.Len(t, view.Activities, 2)
	assert.Equal(t, "weights", view.Activities[1][6])
	assert.Equal(t, 3, view.Credits)

	_, err = f.registrar.AddEvent("s00", dto.AddEventRequest{Title: "Lunch", MeetingDays: "M", StartTime: 1400, EndTime: 1430})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	_, err = f.registrar.AddEvent("s00", dto.AddEventRequest{Title: "Gym", MeetingDays: "T", StartTime: 900, EndTime: 1000})
	assert.True(t, errors.Is(err, appErrors.ErrDuplicate))

	_, err = f.registrar.SetScheduleTitle("s00", dto.ScheduleTitleRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestRegistrarCatalogAdministration(t *testing.T) {
	f := newTestRegistrar(t, 11)
	ctx := context.Background()

	detail, err := f.registrar.AddCourse(ctx, dto.AddCourseRequest{
		Name: "CSC316", Title: "Data Structures", Section: "001", Credits: 3,
		EnrollmentCap: 10, MeetingDays: "TH", StartTime: 1330, EndTime: 1445,
	})
	require.NoError(t, err)
	assert.Equal(t, "TH 1:30PM-2:45PM", detail.Meeting)
	assert.Equal(t, 10, detail.OpenSeats)

	_, err = f.registrar.AddCourse(ctx, dto.AddCourseRequest{
		Name: "CSC316", Title: "Again", Section: "001", Credits: 3,
		EnrollmentCap: 10, MeetingDays: "TH", StartTime: 800, EndTime: 915,
	})
	assert.True(t, errors.Is(err, appErrors.ErrDuplicate))

	for i := 0; i < 11; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC316")
	}
	_, err = f.registrar.SetEnrollmentCap(ctx, "CSC316", "001", dto.SetEnrollmentCapRequest{EnrollmentCap: 300})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	roll, err := f.registrar.SetEnrollmentCap(ctx, "CSC316", "001", dto.SetEnrollmentCapRequest{EnrollmentCap: 20})
	require.NoError(t, err)
	assert.Equal(t, 10, roll.OpenSeats)
	assert.Equal(t, 1, roll.NumberOnWaitlist)

	require.NoError(t, f.registrar.RemoveCourse(ctx, "CSC316", "001"))
	view, err := f.registrar.Schedule("s00")
	require.NoError(t, err)
	assert.Empty(t, view.Rows)
	_, err = f.registrar.GetCourse("CSC316", "001")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.True(t, errors.Is(f.registrar.RemoveCourse(ctx, "CSC316", "001"), appErrors.ErrNotFound))
}

func TestRegistrarListCoursesUsesCache(t *testing.T) {
	f := newTestRegistrar(t, 1)
	ctx := context.Background()

	rows, hit, err := f.registrar.ListCourses(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, rows, 3)
	assert.Equal(t, 10, rows[0].OpenSeats)

	_, hit, err = f.registrar.ListCourses(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().CacheHits)

	enroll(t, f, "s00", "CSC216")
	rows, hit, err = f.registrar.ListCourses(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 9, rows[0].OpenSeats)
}

func TestRegistrarListCoursesReadsCacheUnderLock(t *testing.T) {
	f := newTestRegistrar(t, 1)
	ctx := context.Background()
	backing := newMapCache()
	f.registrar.cache = NewCacheService(backing, f.metrics, time.Minute, nil, true)

	var reads, unlocked int
	backing.onGet = func() {
		reads++
		if f.registrar.mu.TryLock() {
			unlocked++
			f.registrar.mu.Unlock()
		}
	}

	for i := 0; i < 3; i++ {
		_, _, err := f.registrar.ListCourses(ctx)
		require.NoError(t, err)
	}
	enroll(t, f, "s00", "CSC216")
	rows, hit, err := f.registrar.ListCourses(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 9, rows[0].OpenSeats)

	assert.Equal(t, 4, reads)
	assert.Zero(t, unlocked)
}

func TestRegistrarRemoveCourseAuditsWaitlistedStudents(t *testing.T) {
	f := newTestRegistrar(t, 12)
	for i := 0; i < 12; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
	}
	require.NoError(t, f.registrar.RemoveCourse(context.Background(), "CSC216", "001"))

	require.Eventually(t, func() bool { return len(f.events.snapshot()) == 24 }, 2*time.Second, 10*time.Millisecond)
	statuses := eventStatuses(f)
	assert.Contains(t, statuses, "s00:DROPPED")
	assert.Contains(t, statuses, "s10:DROPPED")
	assert.Contains(t, statuses, "s11:DROPPED")
	assert.Equal(t, uint64(12), f.metrics.Snapshot().EnrollmentOutcomes["DROPPED"])
}

func TestRegistrarStudentAdministration(t *testing.T) {
	f := newTestRegistrar(t, 11)
	ctx := context.Background()

	summary, err := f.registrar.AddStudent(addStudentRequest("new1", "Aaron"))
	require.NoError(t, err)
	assert.Equal(t, "new1", summary.ID)
	assert.Equal(t, "new1", f.registrar.ListStudents()[0].ID)

	for i := 0; i < 11; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
	}
	require.NoError(t, f.registrar.RemoveStudent(ctx, "s00"))
	roll, err := f.registrar.CourseRoll("CSC216", "001", true)
	require.NoError(t, err)
	assert.NotContains(t, roll.Enrolled, "s00")
	assert.Contains(t, roll.Enrolled, "s10")
	assert.Empty(t, roll.Waitlist)

	assert.True(t, errors.Is(f.registrar.RemoveStudent(ctx, "s00"), appErrors.ErrNotFound))
}

func TestRegistrarPublishesAuditTrail(t *testing.T) {
	f := newTestRegistrar(t, 11)
	for i := 0; i < 11; i++ {
		enroll(t, f, fmt.Sprintf("s%02d", i), "CSC216")
	}
	_, err := f.registrar.Drop(context.Background(), "s00", "CSC216", "001")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(f.events.snapshot()) == 13 }, 2*time.Second, 10*time.Millisecond)
	statuses := eventStatuses(f)
	assert.Contains(t, statuses, "s10:WAITLISTED")
	assert.Contains(t, statuses, "s00:DROPPED")
	assert.Contains(t, statuses, "s10:PROMOTED")

	outcomes := f.metrics.Snapshot().EnrollmentOutcomes
	assert.Equal(t, uint64(10), outcomes["ENROLLED"])
	assert.Equal(t, uint64(1), outcomes["PROMOTED"])
}

func TestRegistrarCloseSavesOnce(t *testing.T) {
	f := newTestRegistrar(t, 2)
	require.NoError(t, f.registrar.Close(context.Background()))
	assert.Len(t, f.courses.saved, 3)
	assert.Len(t, f.students.saved, 2)
	assert.NotNil(t, f.teachers.saved)

	f.courses.saved = nil
	require.NoError(t, f.registrar.Close(context.Background()))
	assert.Nil(t, f.courses.saved)
}

func TestRegistrarLoadAndClear(t *testing.T) {
	f := newTestRegistrar(t, 0)
	f.courses.records = []models.CourseRecord{courseRecord("CSC116", "001", "MW", 910, 1100)}
	require.NoError(t, f.registrar.Load(context.Background()))

	rows, _, err := f.registrar.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = f.registrar.AddFaculty(addFacultyRequest("awitt", "Witt", 2))
	require.NoError(t, err)

	f.registrar.ClearData(context.Background())
	rows, _, err = f.registrar.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, f.registrar.ListStudents())
	assert.Empty(t, f.registrar.ListFaculty())
}
