package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

type enrollmentService interface {
	Enroll(ctx context.Context, studentID string, req dto.EnrollRequest) (*models.EnrollmentResult, error)
	Drop(ctx context.Context, studentID, name, section string) (*models.DropResult, error)
}

type enrollmentAuditService interface {
	List(ctx context.Context, query dto.EnrollmentEventQuery) ([]models.EnrollmentEvent, *models.Pagination, error)
}

// EnrollmentHandler lets the current student enroll in and drop courses.
type EnrollmentHandler struct {
	service enrollmentService
	audit   enrollmentAuditService
}

// NewEnrollmentHandler builds a new handler.
func NewEnrollmentHandler(svc enrollmentService, audit enrollmentAuditService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc, audit: audit}
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Seats the student or places them on the waitlist
// @Tags Enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.EnrollRequest true "Offering"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid enrollment payload"))
		return
	}
	res, err := h.service.Enroll(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Drop godoc
// @Summary Drop a course
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /enrollments/{name}/{section} [delete]
func (h *EnrollmentHandler) Drop(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	res, err := h.service.Drop(c.Request.Context(), claims.UserID, c.Param("name"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Events godoc
// @Summary List the enrollment audit trail
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Student id"
// @Param course_name query string false "Course name"
// @Param section query string false "Section"
// @Param status query string false "ENROLLED, WAITLISTED, DROPPED or PROMOTED"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /enrollment-events [get]
func (h *EnrollmentHandler) Events(c *gin.Context) {
	var query dto.EnrollmentEventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err, "invalid audit query"))
		return
	}
	events, page, err := h.audit.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, page)
}
