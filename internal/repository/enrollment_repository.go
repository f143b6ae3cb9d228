package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
)

const (
	defaultEventPageSize = 50
	maxEventPageSize     = 200
)

// EnrollmentEventRepository persists the enrollment audit trail.
type EnrollmentEventRepository struct {
	db *sqlx.DB
}

// NewEnrollmentEventRepository constructs the repository.
func NewEnrollmentEventRepository(db *sqlx.DB) *EnrollmentEventRepository {
	return &EnrollmentEventRepository{db: db}
}

// Create inserts event, filling in its id and timestamp when empty.
func (r *EnrollmentEventRepository) Create(ctx context.Context, event *models.EnrollmentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollment_events (id, student_id, course_name, section, status, open_seats, waitlisted, occurred_at)
VALUES (:id, :student_id, :course_name, :section, :status, :open_seats, :waitlisted, :occurred_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("insert enrollment event: %w", err)
	}
	return nil
}

// List returns events newest first plus the total matching count.
func (r *EnrollmentEventRepository) List(ctx context.Context, filter models.EnrollmentEventFilter) ([]models.EnrollmentEvent, int, error) {
	var conditions []string
	var args []interface{}

	if filter.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.CourseName != "" {
		conditions = append(conditions, fmt.Sprintf("course_name = $%d", len(args)+1))
		args = append(args, filter.CourseName)
	}
	if filter.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", len(args)+1))
		args = append(args, filter.Section)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}

	clause := ""
	if len(conditions) > 0 {
		clause = " WHERE " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > maxEventPageSize {
		size = defaultEventPageSize
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT id, student_id, course_name, section, status, open_seats, waitlisted, occurred_at
FROM enrollment_events%s ORDER BY occurred_at DESC LIMIT %d OFFSET %d`, clause, size, offset)

	var events []models.EnrollmentEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list enrollment events: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM enrollment_events"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count enrollment events: %w", err)
	}
	return events, total, nil
}
