package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/pkg/config"
)

type memCourseStore struct {
	records []models.CourseRecord
	loadErr error
	saveErr error
	saved   []models.CourseRecord
}

func (m *memCourseStore) Load(ctx context.Context) ([]models.CourseRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *memCourseStore) Save(ctx context.Context, records []models.CourseRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = records
	return nil
}

type memStudentStore struct {
	records []models.StudentRecord
	loadErr error
	saved   []models.StudentRecord
}

func (m *memStudentStore) Load(ctx context.Context) ([]models.StudentRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *memStudentStore) Save(ctx context.Context, records []models.StudentRecord) error {
	m.saved = records
	return nil
}

type memFacultyStore struct {
	records []models.FacultyRecord
	loadErr error
	saved   []models.FacultyRecord
}

func (m *memFacultyStore) Load(ctx context.Context) ([]models.FacultyRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *memFacultyStore) Save(ctx context.Context, records []models.FacultyRecord) error {
	m.saved = records
	return nil
}

type fakeEventStore struct {
	mu      sync.Mutex
	events  []models.EnrollmentEvent
	failFor int
	listErr error
	filter  models.EnrollmentEventFilter
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.EnrollmentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor > 0 {
		f.failFor--
		return fmt.Errorf("database unavailable")
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) List(ctx context.Context, filter models.EnrollmentEventFilter) ([]models.EnrollmentEvent, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.events, len(f.events), nil
}

func (f *fakeEventStore) snapshot() []models.EnrollmentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.EnrollmentEvent(nil), f.events...)
}

func courseRecord(name, section, days string, start, end int) models.CourseRecord {
	return models.CourseRecord{
		Name:          name,
		Title:         "Title " + name,
		Section:       section,
		Credits:       3,
		InstructorID:  "sesmith5",
		EnrollmentCap: 10,
		MeetingDays:   days,
		StartTime:     start,
		EndTime:       end,
	}
}

func addStudentRequest(id, last string) dto.AddStudentRequest {
	return dto.AddStudentRequest{
		FirstName:      "First",
		LastName:       last,
		ID:             id,
		Email:          id + "@ncsu.edu",
		Password:       "pw-" + id,
		RepeatPassword: "pw-" + id,
	}
}

func addFacultyRequest(id, last string, maxCourses int) dto.AddFacultyRequest {
	return dto.AddFacultyRequest{
		FirstName:      "Prof",
		LastName:       last,
		ID:             id,
		Email:          id + "@ncsu.edu",
		Password:       "pw-" + id,
		RepeatPassword: "pw-" + id,
		MaxCourses:     maxCourses,
	}
}

func newTestFacultyDirectory(t *testing.T, store facultyRecordStore) *FacultyDirectory {
	t.Helper()
	dir := NewFacultyDirectory(store, nil, nil)
	dir.hashCost = bcrypt.MinCost
	return dir
}

func newTestDirectory(t *testing.T, store studentRecordStore) *Directory {
	t.Helper()
	dir := NewDirectory(store, nil, nil)
	dir.hashCost = bcrypt.MinCost
	return dir
}

func newTestTokens(t *testing.T) *TokenIssuer {
	t.Helper()
	tokens, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

var testRegistrarConfig = config.RegistrarConfig{
	ID:        "registrar",
	FirstName: "Wolf",
	LastName:  "Scheduler",
	Email:     "registrar@ncsu.edu",
	Password:  "Regi5tr@r",
}

type registrarFixture struct {
	registrar *Registrar
	catalog   *Catalog
	directory *Directory
	faculty   *FacultyDirectory
	courses   *memCourseStore
	students  *memStudentStore
	teachers  *memFacultyStore
	events    *fakeEventStore
	audit     *AuditService
	metrics   *MetricsService
}

// newTestRegistrar builds a registrar with three courses, no faculty and n
// students whose ids are s00, s01, ...
func newTestRegistrar(t *testing.T, n int) *registrarFixture {
	t.Helper()
	f := &registrarFixture{
		courses:  &memCourseStore{},
		students: &memStudentStore{},
		teachers: &memFacultyStore{},
		events:   &fakeEventStore{},
		metrics:  NewMetricsService(),
	}
	f.catalog = NewCatalog(f.courses, nil)
	f.directory = newTestDirectory(t, f.students)
	f.faculty = newTestFacultyDirectory(t, f.teachers)
	f.audit = NewAuditService(f.events, f.metrics, nil, nil, AuditConfig{Enabled: true, Workers: 1})
	f.audit.Start(context.Background())
	t.Cleanup(f.audit.Stop)

	for _, record := range []models.CourseRecord{
		courseRecord("CSC216", "001", "MW", 1330, 1445),
		courseRecord("CSC226", "001", "MWF", 935, 1025),
		courseRecord("CSC230", "001", "MW", 1400, 1515),
	} {
		_, err := f.catalog.Add(record)
		require.NoError(t, err)
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("s%02d", i)
		_, err := f.directory.Add(addStudentRequest(id, fmt.Sprintf("Last%02d", i)))
		require.NoError(t, err)
	}

	cache := NewCacheService(newMapCache(), f.metrics, time.Minute, nil, true)
	registrar, err := NewRegistrar(testRegistrarConfig, RegistrarDeps{
		Catalog:   f.catalog,
		Directory: f.directory,
		Faculty:   f.faculty,
		Tokens:    newTestTokens(t),
		Audit:     f.audit,
		Cache:     cache,
		Metrics:   f.metrics,
	})
	require.NoError(t, err)
	f.registrar = registrar
	return f
}
