package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
)

// CourseRecordRepository reads and writes the flat course catalog file.
type CourseRecordRepository struct {
	path string
}

// NewCourseRecordRepository binds the repository to path.
func NewCourseRecordRepository(path string) *CourseRecordRepository {
	return &CourseRecordRepository{path: path}
}

// Load returns every row of the catalog file. A missing file yields no rows.
func (r *CourseRecordRepository) Load(ctx context.Context) ([]models.CourseRecord, error) {
	return readRecords[models.CourseRecord](ctx, r.path)
}

// Save atomically replaces the catalog file with records.
func (r *CourseRecordRepository) Save(ctx context.Context, records []models.CourseRecord) error {
	return writeRecords(ctx, r.path, records)
}

// Path returns the backing file.
func (r *CourseRecordRepository) Path() string { return r.path }

// StudentRecordRepository reads and writes the flat student directory file.
type StudentRecordRepository struct {
	path string
}

// NewStudentRecordRepository binds the repository to path.
func NewStudentRecordRepository(path string) *StudentRecordRepository {
	return &StudentRecordRepository{path: path}
}

// Load returns every row of the directory file. A missing file yields no rows.
func (r *StudentRecordRepository) Load(ctx context.Context) ([]models.StudentRecord, error) {
	return readRecords[models.StudentRecord](ctx, r.path)
}

// Save atomically replaces the directory file with records.
func (r *StudentRecordRepository) Save(ctx context.Context, records []models.StudentRecord) error {
	return writeRecords(ctx, r.path, records)
}

// Path returns the backing file.
func (r *StudentRecordRepository) Path() string { return r.path }

// FacultyRecordRepository reads and writes the flat faculty directory file.
type FacultyRecordRepository struct {
	path string
}

// NewFacultyRecordRepository binds the repository to path.
func NewFacultyRecordRepository(path string) *FacultyRecordRepository {
	return &FacultyRecordRepository{path: path}
}

// Load returns every row of the faculty file. A missing file yields no rows.
func (r *FacultyRecordRepository) Load(ctx context.Context) ([]models.FacultyRecord, error) {
	return readRecords[models.FacultyRecord](ctx, r.path)
}

// Save atomically replaces the faculty file with records.
func (r *FacultyRecordRepository) Save(ctx context.Context, records []models.FacultyRecord) error {
	return writeRecords(ctx, r.path, records)
}

// Path returns the backing file.
func (r *FacultyRecordRepository) Path() string { return r.path }

func readRecords[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []T{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return []T{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func writeRecords[T any](ctx context.Context, path string, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if records == nil {
		records = []T{}
	}
	if err := gocsv.MarshalFile(&records, tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
