package service

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/noah-isme/pack-scheduler-api/internal/domain"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

type courseRecordStore interface {
	Load(ctx context.Context) ([]models.CourseRecord, error)
	Save(ctx context.Context, records []models.CourseRecord) error
}

// Catalog holds the course offerings sorted by name then section.
// It is not safe for concurrent use; Registrar serializes access.
type Catalog struct {
	store   courseRecordStore
	logger  *zap.Logger
	courses []*domain.Course
}

// NewCatalog constructs an empty catalog backed by store.
func NewCatalog(store courseRecordStore, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{store: store, logger: logger}
}

// Clear empties the catalog.
func (c *Catalog) Clear() {
	c.courses = nil
}

// Load replaces the catalog with the stored records. Rows the domain rejects
// and repeated offerings are skipped and counted.
func (c *Catalog) Load(ctx context.Context) (int, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course catalog")
	}

	c.courses = nil
	skipped := c.merge(records)
	c.logger.Info("course catalog loaded", zap.Int("courses", len(c.courses)), zap.Int("skipped", skipped))
	return skipped, nil
}

// Merge adds records to the current catalog, returning how many were skipped.
func (c *Catalog) Merge(records []models.CourseRecord) int {
	return c.merge(records)
}

func (c *Catalog) merge(records []models.CourseRecord) int {
	skipped := 0
	for _, record := range records {
		if _, err := c.Add(record); err != nil {
			c.logger.Warn("skipping course record",
				zap.String("name", record.Name),
				zap.String("section", record.Section),
				zap.Error(err),
			)
			skipped++
		}
	}
	return skipped
}

// Save writes the catalog back to its store.
func (c *Catalog) Save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.Records()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save course catalog")
	}
	return nil
}

// Add validates record and inserts it in sorted position.
func (c *Catalog) Add(record models.CourseRecord) (*domain.Course, error) {
	course, err := domain.NewCourse(record)
	if err != nil {
		return nil, err
	}
	if _, found := c.find(course.Name(), course.Section()); found {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "course already exists in catalog")
	}

	idx, _ := slices.BinarySearchFunc(c.courses, course, compareCourses)
	c.courses = slices.Insert(c.courses, idx, course)
	return course, nil
}

// Remove deletes the named offering and returns it.
func (c *Catalog) Remove(name, section string) (*domain.Course, bool) {
	idx, found := c.find(name, section)
	if !found {
		return nil, false
	}
	course := c.courses[idx]
	c.courses = slices.Delete(c.courses, idx, idx+1)
	return course, true
}

// Get returns the named offering.
func (c *Catalog) Get(name, section string) (*domain.Course, error) {
	idx, found := c.find(name, section)
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found in catalog")
	}
	return c.courses[idx], nil
}

func (c *Catalog) find(name, section string) (int, bool) {
	_, idx, found := lo.FindIndexOf(c.courses, func(course *domain.Course) bool {
		return course.SameOffering(name, section)
	})
	return idx, found
}

// Courses returns the offerings in catalog order.
func (c *Catalog) Courses() []*domain.Course {
	return slices.Clone(c.courses)
}

// Len returns the number of offerings.
func (c *Catalog) Len() int { return len(c.courses) }

// Rows returns the student facing catalog listing.
func (c *Catalog) Rows() []models.CourseSummary {
	return lo.Map(c.courses, func(course *domain.Course, _ int) models.CourseSummary {
		return course.Summary()
	})
}

// Records returns the catalog as flat records.
func (c *Catalog) Records() []models.CourseRecord {
	return lo.Map(c.courses, func(course *domain.Course, _ int) models.CourseRecord {
		return course.Record()
	})
}

func compareCourses(a, b *domain.Course) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
