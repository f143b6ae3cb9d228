package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
	"github.com/noah-isme/pack-scheduler-api/pkg/jobs"
)

const (
	auditJobType   = "enrollment_event"
	publishTimeout = 100 * time.Millisecond

	defaultAuditPageSize = 50
)

type enrollmentEventStore interface {
	Create(ctx context.Context, event *models.EnrollmentEvent) error
	List(ctx context.Context, filter models.EnrollmentEventFilter) ([]models.EnrollmentEvent, int, error)
}

// AuditConfig controls the audit pipeline.
type AuditConfig struct {
	Enabled bool
	Workers int
}

// AuditService persists enrollment events asynchronously through a worker queue.
// A disabled service discards events.
type AuditService struct {
	store     enrollmentEventStore
	queue     *jobs.Queue
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	enabled   bool
}

// NewAuditService constructs the service. The queue is started by Start.
func NewAuditService(store enrollmentEventStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg AuditConfig) *AuditService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AuditService{
		store:     store,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		enabled:   cfg.Enabled && store != nil,
	}
	s.queue = jobs.NewQueue("audit", s.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
		Logger:     logger,
	})
	return s
}

// Enabled reports whether events are persisted.
func (s *AuditService) Enabled() bool {
	return s != nil && s.enabled
}

// Start launches the audit workers.
func (s *AuditService) Start(ctx context.Context) {
	if !s.Enabled() {
		return
	}
	s.queue.Start(ctx)
}

// Stop drains buffered events and stops the workers.
func (s *AuditService) Stop() {
	if !s.Enabled() {
		return
	}
	s.queue.Stop()
}

// Publish queues event for persistence. It never fails the caller; events
// that cannot be queued in time are counted as dropped.
func (s *AuditService) Publish(ctx context.Context, event models.EnrollmentEvent) {
	if !s.Enabled() {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.queue.Enqueue(publishCtx, jobs.Job{Type: auditJobType, Payload: event}); err != nil {
		s.metrics.RecordAuditDropped()
		s.logger.Warn("audit event dropped",
			zap.String("student_id", event.StudentID),
			zap.String("course", event.CourseName),
			zap.String("status", string(event.Status)),
			zap.Error(err),
		)
	}
}

func (s *AuditService) handle(ctx context.Context, job jobs.Job) error {
	event, ok := job.Payload.(models.EnrollmentEvent)
	if !ok {
		s.logger.Error("unexpected audit payload", zap.String("job_id", job.ID))
		return nil
	}
	if event.ID == "" {
		event.ID = job.ID
	}
	return s.store.Create(ctx, &event)
}

// List returns the audit trail newest first.
func (s *AuditService) List(ctx context.Context, query dto.EnrollmentEventQuery) ([]models.EnrollmentEvent, *models.Pagination, error) {
	if !s.Enabled() {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment audit trail is disabled")
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid audit query")
	}

	filter := models.EnrollmentEventFilter{
		StudentID:  query.StudentID,
		CourseName: query.CourseName,
		Section:    query.Section,
		Status:     models.EnrollmentStatus(query.Status),
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	events, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollment events")
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = defaultAuditPageSize
	}
	return events, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}
