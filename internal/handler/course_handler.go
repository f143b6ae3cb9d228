package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/middleware"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/internal/service"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

type courseService interface {
	ListCourses(ctx context.Context) ([]models.CourseSummary, bool, error)
	GetCourse(name, section string) (*models.CourseDetail, error)
	CourseRoll(name, section string, includeStudents bool) (*models.RollSummary, error)
	AddCourse(ctx context.Context, req dto.AddCourseRequest) (*models.CourseDetail, error)
	RemoveCourse(ctx context.Context, name, section string) error
	SetEnrollmentCap(ctx context.Context, name, section string, req dto.SetEnrollmentCapRequest) (*models.RollSummary, error)
}

type catalogExporter interface {
	Catalog(rows []models.CourseSummary, format string) (*service.ExportFile, error)
}

// CourseHandler exposes the course catalog.
type CourseHandler struct {
	service  courseService
	exporter catalogExporter
}

// NewCourseHandler builds a new handler.
func NewCourseHandler(svc courseService, exporter catalogExporter) *CourseHandler {
	return &CourseHandler{service: svc, exporter: exporter}
}

// List godoc
// @Summary List catalog offerings
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	rows, hit, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Download the catalog
// @Tags Courses
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /courses/export [get]
func (h *CourseHandler) Export(c *gin.Context) {
	rows, _, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.Catalog(rows, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Download(c, file.Filename, file.ContentType, file.Data)
}

// Get godoc
// @Summary Get one offering
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{name}/{section} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	detail, err := h.service.GetCourse(c.Param("name"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Roll godoc
// @Summary Seat accounting of an offering
// @Description Student ids are only listed for the registrar
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Router /courses/{name}/{section}/roll [get]
func (h *CourseHandler) Roll(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	roll, err := h.service.CourseRoll(c.Param("name"), c.Param("section"), claims.Role == models.RoleRegistrar)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roll, nil)
}

// Create godoc
// @Summary Add an offering to the catalog
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid course payload"))
		return
	}
	detail, err := h.service.AddCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// Delete godoc
// @Summary Remove an offering from the catalog
// @Tags Courses
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /courses/{name}/{section} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.service.RemoveCourse(c.Request.Context(), c.Param("name"), c.Param("section")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetCap godoc
// @Summary Change the enrollment cap
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param section path string true "Section"
// @Param payload body dto.SetEnrollmentCapRequest true "Cap payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/{name}/{section}/cap [put]
func (h *CourseHandler) SetCap(c *gin.Context) {
	var req dto.SetEnrollmentCapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid enrollment cap payload"))
		return
	}
	roll, err := h.service.SetEnrollmentCap(c.Request.Context(), c.Param("name"), c.Param("section"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roll, nil)
}
