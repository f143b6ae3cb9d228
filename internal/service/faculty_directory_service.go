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

type facultyRecordStore interface {
	Load(ctx context.Context) ([]models.FacultyRecord, error)
	Save(ctx context.Context, records []models.FacultyRecord) error
}

// FacultyDirectory holds the faculty sorted by last name, first name and id.
// Like Directory it relies on Registrar for locking.
type FacultyDirectory struct {
	store     facultyRecordStore
	validator *validator.Validate
	logger    *zap.Logger
	hashCost  int
	faculty   []*domain.Faculty
}

// NewFacultyDirectory constructs an empty faculty directory backed by store.
func NewFacultyDirectory(store facultyRecordStore, validate *validator.Validate, logger *zap.Logger) *FacultyDirectory {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyDirectory{store: store, validator: validate, logger: logger, hashCost: bcrypt.DefaultCost}
}

// Clear empties the faculty directory.
func (d *FacultyDirectory) Clear() {
	d.faculty = nil
}

// Load replaces the faculty directory with the stored records. Invalid rows
// and repeated ids are skipped and counted.
func (d *FacultyDirectory) Load(ctx context.Context) (int, error) {
	records, err := d.store.Load(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty directory")
	}

	d.faculty = nil
	skipped := 0
	for _, record := range records {
		f, err := domain.NewFaculty(record)
		if err == nil {
			err = d.insert(f)
		}
		if err != nil {
			d.logger.Warn("skipping faculty record", zap.String("id", record.ID), zap.Error(err))
			skipped++
		}
	}
	d.logger.Info("faculty directory loaded", zap.Int("faculty", len(d.faculty)), zap.Int("skipped", skipped))
	return skipped, nil
}

// Save writes the faculty directory back to its store.
func (d *FacultyDirectory) Save(ctx context.Context) error {
	if err := d.store.Save(ctx, d.Records()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save faculty directory")
	}
	return nil
}

// Add registers a faculty member, hashing the password with bcrypt.
func (d *FacultyDirectory) Add(req dto.AddFacultyRequest) (*domain.Faculty, error) {
	if err := d.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}
	if req.Password != req.RepeatPassword {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "passwords do not match")
	}
	if _, found := d.find(req.ID); found {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "faculty id already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), d.hashCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	f, err := domain.NewFaculty(models.FacultyRecord{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ID:           req.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
		MaxCourses:   req.MaxCourses,
	})
	if err != nil {
		return nil, err
	}
	if err := d.insert(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *FacultyDirectory) insert(f *domain.Faculty) error {
	if _, found := d.find(f.ID()); found {
		return appErrors.Clone(appErrors.ErrDuplicate, "faculty id already registered")
	}
	idx, _ := slices.BinarySearchFunc(d.faculty, f, compareFaculty)
	d.faculty = slices.Insert(d.faculty, idx, f)
	return nil
}

// Remove deletes the faculty member with id and returns them.
func (d *FacultyDirectory) Remove(id string) (*domain.Faculty, bool) {
	idx, found := d.find(id)
	if !found {
		return nil, false
	}
	f := d.faculty[idx]
	d.faculty = slices.Delete(d.faculty, idx, idx+1)
	return f, true
}

// Get returns the faculty member with id.
func (d *FacultyDirectory) Get(id string) (*domain.Faculty, error) {
	idx, found := d.find(id)
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
	}
	return d.faculty[idx], nil
}

// Authenticate checks password against the stored hash for id.
func (d *FacultyDirectory) Authenticate(id, password string) (*domain.Faculty, error) {
	f, err := d.Get(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid id or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(f.PasswordHash()), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid id or password")
	}
	return f, nil
}

func (d *FacultyDirectory) find(id string) (int, bool) {
	_, idx, found := lo.FindIndexOf(d.faculty, func(f *domain.Faculty) bool {
		return f.ID() == id
	})
	return idx, found
}

// Faculty returns the faculty in directory order.
func (d *FacultyDirectory) Faculty() []*domain.Faculty {
	return slices.Clone(d.faculty)
}

// Len returns the number of faculty members.
func (d *FacultyDirectory) Len() int { return len(d.faculty) }

// Rows returns the registrar facing listing.
func (d *FacultyDirectory) Rows() []models.FacultySummary {
	return lo.Map(d.faculty, func(f *domain.Faculty, _ int) models.FacultySummary {
		return f.Summary()
	})
}

// Records returns the faculty directory as flat records.
func (d *FacultyDirectory) Records() []models.FacultyRecord {
	return lo.Map(d.faculty, func(f *domain.Faculty, _ int) models.FacultyRecord {
		return f.Record()
	})
}

func compareFaculty(a, b *domain.Faculty) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
