package service

import (
	"context"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/pack-scheduler-api/internal/domain"
	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

type studentRecordStore interface {
	Load(ctx context.Context) ([]models.StudentRecord, error)
	Save(ctx context.Context, records []models.StudentRecord) error
}

// Directory holds the registered students sorted by last name, first name
// and id. It is not safe for concurrent use; Registrar serializes access.
type Directory struct {
	store     studentRecordStore
	validator *validator.Validate
	logger    *zap.Logger
	hashCost  int
	students  []*domain.Student
}

// NewDirectory constructs an empty directory backed by store.
func NewDirectory(store studentRecordStore, validate *validator.Validate, logger *zap.Logger) *Directory {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{store: store, validator: validate, logger: logger, hashCost: bcrypt.DefaultCost}
}

// Clear empties the directory.
func (d *Directory) Clear() {
	d.students = nil
}

// Load replaces the directory with the stored records. Invalid rows and
// repeated ids are skipped and counted.
func (d *Directory) Load(ctx context.Context) (int, error) {
	records, err := d.store.Load(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student directory")
	}

	d.students = nil
	skipped := 0
	for _, record := range records {
		student, err := domain.NewStudent(record)
		if err == nil {
			err = d.insert(student)
		}
		if err != nil {
			d.logger.Warn("skipping student record", zap.String("id", record.ID), zap.Error(err))
			skipped++
		}
	}
	d.logger.Info("student directory loaded", zap.Int("students", len(d.students)), zap.Int("skipped", skipped))
	return skipped, nil
}

// Save writes the directory back to its store.
func (d *Directory) Save(ctx context.Context) error {
	if err := d.store.Save(ctx, d.Records()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save student directory")
	}
	return nil
}

// Add registers a student, hashing the password with bcrypt.
func (d *Directory) Add(req dto.AddStudentRequest) (*domain.Student, error) {
	if err := d.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if req.Password != req.RepeatPassword {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "passwords do not match")
	}
	if _, found := d.find(req.ID); found {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "student id already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), d.hashCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	student, err := domain.NewStudent(models.StudentRecord{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ID:           req.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
		MaxCredits:   req.MaxCredits,
	})
	if err != nil {
		return nil, err
	}
	if err := d.insert(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (d *Directory) insert(student *domain.Student) error {
	if _, found := d.find(student.ID()); found {
		return appErrors.Clone(appErrors.ErrDuplicate, "student id already registered")
	}
	idx, _ := slices.BinarySearchFunc(d.students, student, compareStudents)
	d.students = slices.Insert(d.students, idx, student)
	return nil
}

// Remove deletes the student with id and returns them.
func (d *Directory) Remove(id string) (*domain.Student, bool) {
	idx, found := d.find(id)
	if !found {
		return nil, false
	}
	student := d.students[idx]
	d.students = slices.Delete(d.students, idx, idx+1)
	return student, true
}

// Get returns the student with id.
func (d *Directory) Get(id string) (*domain.Student, error) {
	idx, found := d.find(id)
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return d.students[idx], nil
}

// Authenticate checks password against the stored hash for id.
func (d *Directory) Authenticate(id, password string) (*domain.Student, error) {
	student, err := d.Get(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid id or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash()), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid id or password")
	}
	return student, nil
}

func (d *Directory) find(id string) (int, bool) {
	_, idx, found := lo.FindIndexOf(d.students, func(s *domain.Student) bool {
		return s.ID() == id
	})
	return idx, found
}

// Students returns the students in directory order.
func (d *Directory) Students() []*domain.Student {
	return slices.Clone(d.students)
}

// Len returns the number of students.
func (d *Directory) Len() int { return len(d.students) }

// Rows returns the registrar facing listing.
func (d *Directory) Rows() []models.StudentSummary {
	return lo.Map(d.students, func(s *domain.Student, _ int) models.StudentSummary {
		return s.Summary()
	})
}

// Records returns the directory as flat records.
func (d *Directory) Records() []models.StudentRecord {
	return lo.Map(d.students, func(s *domain.Student, _ int) models.StudentRecord {
		return s.Record()
	})
}

func compareStudents(a, b *domain.Student) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
