package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

type facultyService interface {
	ListFaculty() []models.FacultySummary
	AddFaculty(req dto.AddFacultyRequest) (*models.FacultySummary, error)
	RemoveFaculty(ctx context.Context, id string) error
	AssignFaculty(ctx context.Context, facultyID string, req dto.AssignCourseRequest) (*models.FacultyScheduleView, error)
	UnassignFaculty(ctx context.Context, facultyID, name, section string) (*models.FacultyScheduleView, error)
	ResetFacultySchedule(ctx context.Context, facultyID string) error
	FacultySchedule(facultyID string) (*models.FacultyScheduleView, error)
}

// FacultyHandler exposes the faculty directory and teaching assignments.
type FacultyHandler struct {
	service facultyService
}

// NewFacultyHandler builds a new handler.
func NewFacultyHandler(svc facultyService) *FacultyHandler {
	return &FacultyHandler{service: svc}
}

// List godoc
// @Summary List faculty
// @Tags Faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListFaculty(), nil)
}

// Create godoc
// @Summary Register a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddFacultyRequest true "Faculty"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /faculty [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.AddFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid faculty payload"))
		return
	}
	summary, err := h.service.AddFaculty(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, summary)
}

// Delete godoc
// @Summary Remove a faculty member
// @Description Unassigns every course the faculty member teaches first
// @Tags Faculty
// @Security BearerAuth
// @Param id path string true "Faculty id"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	if err := h.service.RemoveFaculty(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Schedule godoc
// @Summary Teaching schedule of a faculty member
// @Tags Faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id}/schedule [get]
func (h *FacultyHandler) Schedule(c *gin.Context) {
	h.writeSchedule(c, c.Param("id"))
}

// MySchedule godoc
// @Summary Teaching schedule of the current faculty member
// @Tags Faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /faculty/me/schedule [get]
func (h *FacultyHandler) MySchedule(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	h.writeSchedule(c, claims.UserID)
}

func (h *FacultyHandler) writeSchedule(c *gin.Context, facultyID string) {
	view, err := h.service.FacultySchedule(facultyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Assign godoc
// @Summary Assign a course to a faculty member
// @Description The response reports whether the faculty member is overloaded
// @Tags Faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty id"
// @Param payload body dto.AssignCourseRequest true "Offering"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /faculty/{id}/courses [post]
func (h *FacultyHandler) Assign(c *gin.Context) {
	var req dto.AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid assignment payload"))
		return
	}
	view, err := h.service.AssignFaculty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Unassign godoc
// @Summary Remove a course from a faculty member
// @Tags Faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty id"
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id}/courses/{name}/{section} [delete]
func (h *FacultyHandler) Unassign(c *gin.Context) {
	view, err := h.service.UnassignFaculty(c.Request.Context(), c.Param("id"), c.Param("name"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Reset godoc
// @Summary Clear a faculty member's teaching schedule
// @Tags Faculty
// @Security BearerAuth
// @Param id path string true "Faculty id"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id}/schedule [delete]
func (h *FacultyHandler) Reset(c *gin.Context) {
	if err := h.service.ResetFacultySchedule(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
