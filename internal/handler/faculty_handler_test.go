package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

type facultyServiceMock struct {
	scheduleFor string
	assignID    string
	assignReq   dto.AssignCourseRequest
	unassigned  []string
	resetID     string
	err         error
}

func (m *facultyServiceMock) ListFaculty() []models.FacultySummary {
	return []models.FacultySummary{{ID: "awitt", MaxCourses: 2}}
}

func (m *facultyServiceMock) AddFaculty(req dto.AddFacultyRequest) (*models.FacultySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.FacultySummary{ID: req.ID, MaxCourses: req.MaxCourses}, nil
}

func (m *facultyServiceMock) RemoveFaculty(ctx context.Context, id string) error {
	return m.err
}

func (m *facultyServiceMock) AssignFaculty(ctx context.Context, facultyID string, req dto.AssignCourseRequest) (*models.FacultyScheduleView, error) {
	m.assignID, m.assignReq = facultyID, req
	if m.err != nil {
		return nil, m.err
	}
	return &models.FacultyScheduleView{FacultyID: facultyID, Courses: 2, MaxCourses: 1, Overloaded: true}, nil
}

func (m *facultyServiceMock) UnassignFaculty(ctx context.Context, facultyID, name, section string) (*models.FacultyScheduleView, error) {
	m.unassigned = []string{facultyID, name, section}
	return &models.FacultyScheduleView{FacultyID: facultyID}, m.err
}

func (m *facultyServiceMock) ResetFacultySchedule(ctx context.Context, facultyID string) error {
	m.resetID = facultyID
	return m.err
}

func (m *facultyServiceMock) FacultySchedule(facultyID string) (*models.FacultyScheduleView, error) {
	m.scheduleFor = facultyID
	if facultyID == "ghost" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
	}
	return &models.FacultyScheduleView{FacultyID: facultyID, Rows: [][]string{{"CSC216", "001"}}}, nil
}

var facultyClaims = &models.JWTClaims{UserID: "awitt", Role: models.RoleFaculty}

func TestFacultyHandlerCreate(t *testing.T) {
	svc := &facultyServiceMock{}
	h := NewFacultyHandler(svc)

	c, w := newContext(http.MethodPost, "/faculty", `{"id":`, registrarClaims)
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newContext(http.MethodPost, "/faculty", dto.AddFacultyRequest{ID: "awitt", MaxCourses: 2}, registrarClaims)
	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"max_courses":2`)

	svc.err = appErrors.Clone(appErrors.ErrDuplicate, "faculty id already registered")
	c, w = newContext(http.MethodPost, "/faculty", dto.AddFacultyRequest{ID: "awitt", MaxCourses: 2}, registrarClaims)
	h.Create(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFacultyHandlerMyScheduleUsesCallerIdentity(t *testing.T) {
	svc := &facultyServiceMock{}
	h := NewFacultyHandler(svc)

	c, w := newContext(http.MethodGet, "/faculty/me/schedule", nil, facultyClaims)
	h.MySchedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "awitt", svc.scheduleFor)
	assert.Contains(t, w.Body.String(), `"faculty_id":"awitt"`)

	c, w = newContext(http.MethodGet, "/faculty/me/schedule", nil, nil)
	h.MySchedule(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newContext(http.MethodGet, "/faculty/ghost/schedule", nil, registrarClaims)
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}
	h.Schedule(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFacultyHandlerAssignment(t *testing.T) {
	svc := &facultyServiceMock{}
	h := NewFacultyHandler(svc)

	c, w := newContext(http.MethodPost, "/faculty/awitt/courses", dto.AssignCourseRequest{CourseName: "CSC216", Section: "001"}, registrarClaims)
	c.Params = gin.Params{{Key: "id", Value: "awitt"}}
	h.Assign(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "awitt", svc.assignID)
	assert.Equal(t, "CSC216", svc.assignReq.CourseName)
	assert.Contains(t, w.Body.String(), `"overloaded":true`)

	c, w = newContext(http.MethodDelete, "/faculty/awitt/courses/CSC216/001", nil, registrarClaims)
	c.Params = gin.Params{{Key: "id", Value: "awitt"}, {Key: "name", Value: "CSC216"}, {Key: "section", Value: "001"}}
	h.Unassign(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"awitt", "CSC216", "001"}, svc.unassigned)

	c, w = newContext(http.MethodDelete, "/faculty/awitt/schedule", nil, registrarClaims)
	c.Params = gin.Params{{Key: "id", Value: "awitt"}}
	h.Reset(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "awitt", svc.resetID)

	svc.err = appErrors.Clone(appErrors.ErrConflict, "the course cannot be assigned due to a conflict")
	c, w = newContext(http.MethodPost, "/faculty/awitt/courses", dto.AssignCourseRequest{CourseName: "CSC230", Section: "001"}, registrarClaims)
	c.Params = gin.Params{{Key: "id", Value: "awitt"}}
	h.Assign(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}
