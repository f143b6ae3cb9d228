package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/internal/service"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

type scheduleService interface {
	Schedule(studentID string) (*models.ScheduleView, error)
	ResetSchedule(ctx context.Context, studentID string) error
	AddEvent(studentID string, req dto.AddEventRequest) (*models.ScheduleView, error)
	SetScheduleTitle(studentID string, req dto.ScheduleTitleRequest) (*models.ScheduleView, error)
}

type scheduleExporter interface {
	Schedule(view models.ScheduleView, format string) (*service.ExportFile, error)
}

// ScheduleHandler exposes the current student's schedule.
type ScheduleHandler struct {
	service  scheduleService
	exporter scheduleExporter
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(svc scheduleService, exporter scheduleExporter) *ScheduleHandler {
	return &ScheduleHandler{service: svc, exporter: exporter}
}

// Get godoc
// @Summary Current student's schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.service.Schedule(claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Reset godoc
// @Summary Drop every course and clear the schedule
// @Tags Schedule
// @Security BearerAuth
// @Success 204
// @Router /schedule [delete]
func (h *ScheduleHandler) Reset(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.service.ResetSchedule(c.Request.Context(), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetTitle godoc
// @Summary Rename the schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ScheduleTitleRequest true "Title"
// @Success 200 {object} response.Envelope
// @Router /schedule/title [put]
func (h *ScheduleHandler) SetTitle(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ScheduleTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid schedule title"))
		return
	}
	view, err := h.service.SetScheduleTitle(claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// AddEvent godoc
// @Summary Add a personal event
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddEventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /schedule/events [post]
func (h *ScheduleHandler) AddEvent(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid event payload"))
		return
	}
	view, err := h.service.AddEvent(claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Export godoc
// @Summary Download the schedule
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.service.Schedule(claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.Schedule(*view, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Download(c, file.Filename, file.ContentType, file.Data)
}
