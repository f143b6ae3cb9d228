package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/pack-scheduler-api/internal/domain"
	"github.com/noah-isme/pack-scheduler-api/internal/dto"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/pkg/config"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

const (
	catalogListKey      = "catalog:list"
	catalogCachePattern = "catalog:*"
)

// RegistrarDeps groups the collaborators of a Registrar.
type RegistrarDeps struct {
	Catalog   *Catalog
	Directory *Directory
	Faculty   *FacultyDirectory
	Tokens    *TokenIssuer
	Audit     *AuditService
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
}

type registrarAccount struct {
	info models.UserInfo
	hash []byte
}

// Registrar is the registration context shared by every request. All catalog,
// directory, roll and schedule state is guarded by one lock.
type Registrar struct {
	mu        sync.RWMutex
	account   registrarAccount
	catalog   *Catalog
	directory *Directory
	faculty   *FacultyDirectory
	tokens    *TokenIssuer
	audit     *AuditService
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	closed    bool
}

// NewRegistrar builds the registration context around the registrar account.
func NewRegistrar(cfg config.RegistrarConfig, deps RegistrarDeps) (*Registrar, error) {
	if deps.Catalog == nil || deps.Directory == nil || deps.Faculty == nil || deps.Tokens == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "catalog, directories and token issuer are required")
	}
	if cfg.ID == "" || cfg.Password == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "cannot create registrar")
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "cannot hash registrar password")
	}

	return &Registrar{
		account: registrarAccount{
			info: models.UserInfo{
				ID:        cfg.ID,
				Email:     cfg.Email,
				FirstName: cfg.FirstName,
				LastName:  cfg.LastName,
				Role:      models.RoleRegistrar,
			},
			hash: hash,
		},
		catalog:   deps.Catalog,
		directory: deps.Directory,
		faculty:   deps.Faculty,
		tokens:    deps.Tokens,
		audit:     deps.Audit,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		validator: deps.Validator,
		logger:    deps.Logger,
	}, nil
}

// Load reads the faculty, catalog and student snapshots, then places every
// course on its instructor's teaching schedule.
func (r *Registrar) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.faculty.Load(ctx); err != nil {
		return err
	}
	if _, err := r.catalog.Load(ctx); err != nil {
		return err
	}
	r.linkInstructors()
	if _, err := r.directory.Load(ctx); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// linkInstructors adds each course to the schedule of the faculty member it
// names. Courses that do not fit stay in the catalog, unlinked.
func (r *Registrar) linkInstructors() {
	for _, course := range r.catalog.Courses() {
		if err := r.linkInstructor(course); err != nil {
			r.logger.Warn("cannot place course on instructor schedule",
				zap.String("course", course.Name()+"-"+course.Section()),
				zap.String("faculty_id", course.InstructorID()),
				zap.Error(err),
			)
		}
	}
}

// linkInstructor places course on its instructor's schedule. Instructor ids
// missing from the faculty directory are left as recorded.
func (r *Registrar) linkInstructor(course *domain.Course) error {
	if course.InstructorID() == "" {
		return nil
	}
	f, err := r.faculty.Get(course.InstructorID())
	if err != nil {
		return nil
	}
	return f.Schedule().AddCourse(course)
}

// Save writes the catalog and both directory snapshots.
func (r *Registrar) Save(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.save(ctx)
}

func (r *Registrar) save(ctx context.Context) error {
	if err := r.catalog.Save(ctx); err != nil {
		return err
	}
	if err := r.directory.Save(ctx); err != nil {
		return err
	}
	return r.faculty.Save(ctx)
}

// Close saves state and stops the audit workers. Later calls are no-ops.
func (r *Registrar) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.save(ctx)
	r.audit.Stop()
	return err
}

// ClearData empties the catalog and both directories.
func (r *Registrar) ClearData(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog.Clear()
	r.directory.Clear()
	r.faculty.Clear()
	r.invalidate(ctx)
	r.logger.Info("registration data cleared")
}

// Login authenticates the registrar, a student or a faculty member and issues
// a session token.
func (r *Registrar) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := r.authenticate(req.ID, req.Password)
	if err != nil {
		r.logger.Info("login rejected", zap.String("user_id", req.ID), zap.String("ip", req.IP))
		return nil, err
	}

	token, issuedAt, err := r.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	r.logger.Info("login succeeded", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(r.tokens.Expiry().Seconds()),
		User:        user,
		IssuedAt:    issuedAt,
	}, nil
}

func (r *Registrar) authenticate(id, password string) (models.UserInfo, error) {
	if id == r.account.info.ID {
		if err := bcrypt.CompareHashAndPassword(r.account.hash, []byte(password)); err != nil {
			return models.UserInfo{}, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid id or password")
		}
		return r.account.info, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if student, err := r.directory.Authenticate(id, password); err == nil {
		return models.UserInfo{
			ID:        student.ID(),
			Email:     student.Email(),
			FirstName: student.FirstName(),
			LastName:  student.LastName(),
			Role:      models.RoleStudent,
		}, nil
	}
	f, err := r.faculty.Authenticate(id, password)
	if err != nil {
		return models.UserInfo{}, err
	}
	return models.UserInfo{
		ID:        f.ID(),
		Email:     f.Email(),
		FirstName: f.FirstName(),
		LastName:  f.LastName(),
		Role:      models.RoleFaculty,
	}, nil
}

// ListCourses returns the catalog rows, served from cache when possible. The
// second result reports a cache hit.
func (r *Registrar) ListCourses(ctx context.Context) ([]models.CourseSummary, bool, error) {
	// Writers invalidate under the write lock, so a read under RLock never
	// sees rows from before a mutation.
	r.mu.RLock()
	defer r.mu.RUnlock()
	var cached []models.CourseSummary
	if hit, _ := r.cache.Get(ctx, catalogListKey, &cached); hit {
		return cached, true, nil
	}
	rows := r.catalog.Rows()
	_ = r.cache.Set(ctx, catalogListKey, rows, 0)
	return rows, false, nil
}

// GetCourse returns the full view of one offering.
func (r *Registrar) GetCourse(name, section string) (*models.CourseDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, err := r.catalog.Get(name, section)
	if err != nil {
		return nil, err
	}
	return courseDetail(course), nil
}

// CourseRoll returns the seat accounting of one offering. Student ids are
// included when includeStudents is set.
func (r *Registrar) CourseRoll(name, section string, includeStudents bool) (*models.RollSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, err := r.catalog.Get(name, section)
	if err != nil {
		return nil, err
	}
	return rollSummary(course, includeStudents), nil
}

// AddCourse adds an offering to the catalog.
func (r *Registrar) AddCourse(ctx context.Context, req dto.AddCourseRequest) (*models.CourseDetail, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	course, err := r.catalog.Add(models.CourseRecord{
		Name:          req.Name,
		Title:         req.Title,
		Section:       req.Section,
		Credits:       req.Credits,
		InstructorID:  req.InstructorID,
		EnrollmentCap: req.EnrollmentCap,
		MeetingDays:   req.MeetingDays,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if err := r.linkInstructor(course); err != nil {
		r.catalog.Remove(course.Name(), course.Section())
		return nil, err
	}
	r.invalidate(ctx)
	r.logger.Info("course added", zap.String("course", course.Name()), zap.String("section", course.Section()))
	return courseDetail(course), nil
}

// RemoveCourse deletes an offering and takes it off every enrolled schedule
// and its instructor's schedule. Each enrolled and waitlisted student gets a
// drop record.
func (r *Registrar) RemoveCourse(ctx context.Context, name, section string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.catalog.Remove(name, section)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found in catalog")
	}
	for _, student := range course.Roll().Enrolled() {
		student.Schedule().RemoveCourse(course)
		r.record(ctx, student, course, models.EnrollmentStatusDropped)
	}
	for _, student := range course.Roll().Waitlist() {
		r.record(ctx, student, course, models.EnrollmentStatusDropped)
	}
	if f, err := r.faculty.Get(course.InstructorID()); err == nil {
		f.Schedule().RemoveCourse(course)
	}
	r.invalidate(ctx)
	r.logger.Info("course removed", zap.String("course", name), zap.String("section", section))
	return nil
}

// SetEnrollmentCap changes the seat limit of an offering.
func (r *Registrar) SetEnrollmentCap(ctx context.Context, name, section string, req dto.SetEnrollmentCapRequest) (*models.RollSummary, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment cap payload")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	course, err := r.catalog.Get(name, section)
	if err != nil {
		return nil, err
	}
	if err := course.Roll().SetEnrollmentCap(req.EnrollmentCap); err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	r.logger.Info("enrollment cap changed",
		zap.String("course", name),
		zap.String("section", section),
		zap.Int("cap", req.EnrollmentCap),
	)
	return rollSummary(course, true), nil
}

// ListStudents returns the directory rows.
func (r *Registrar) ListStudents() []models.StudentSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directory.Rows()
}

// AddStudent registers a student.
func (r *Registrar) AddStudent(req dto.AddStudentRequest) (*models.StudentSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, err := r.directory.Add(req)
	if err != nil {
		return nil, err
	}
	r.logger.Info("student added", zap.String("student_id", student.ID()))
	summary := student.Summary()
	return &summary, nil
}

// RemoveStudent deletes a student after dropping them from every roll.
func (r *Registrar) RemoveStudent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, err := r.directory.Get(id)
	if err != nil {
		return err
	}
	for _, course := range r.catalog.Courses() {
		if course.Roll().IsEnrolled(student) || course.Roll().IsWaitlisted(student) {
			if err := r.drop(ctx, student, course); err != nil {
				return err
			}
		}
	}
	r.directory.Remove(id)
	r.invalidate(ctx)
	r.logger.Info("student removed", zap.String("student_id", id))
	return nil
}

// Enroll places the student in the requested offering, either seated or on
// the waitlist. The student's schedule and credit limit must accept the
// course and the roll must have room for them.
func (r *Registrar) Enroll(ctx context.Context, studentID string, req dto.EnrollRequest) (*models.EnrollmentResult, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	student, course, err := r.lookup(studentID, req.CourseName, req.Section)
	if err != nil {
		return nil, err
	}
	roll := course.Roll()

	if !student.CanAdd(course) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course does not fit the schedule or credit limit")
	}
	if !roll.CanEnroll(student) {
		if roll.IsEnrolled(student) || roll.IsWaitlisted(student) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "student is already on the roll")
		}
		return nil, appErrors.Clone(appErrors.ErrCapacityExceeded, "course and waitlist are full")
	}

	placement, err := roll.Enroll(student)
	if err != nil {
		return nil, err
	}

	status := models.EnrollmentStatusEnrolled
	if placement == domain.PlacementWaitlisted {
		status = models.EnrollmentStatusWaitlisted
	}
	r.record(ctx, student, course, status)
	r.invalidate(ctx)
	r.logger.Info("enrollment processed",
		zap.String("student_id", student.ID()),
		zap.String("course", course.Name()+"-"+course.Section()),
		zap.String("placement", string(placement)),
	)

	return &models.EnrollmentResult{
		CourseName: course.Name(),
		Section:    course.Section(),
		Status:     status,
		OpenSeats:  roll.OpenSeats(),
		Waitlisted: roll.NumberOnWaitlist(),
	}, nil
}

// Drop removes the student from the offering's roll and their schedule.
// Dropping a course the student holds no place in is a no-op.
func (r *Registrar) Drop(ctx context.Context, studentID, name, section string) (*models.DropResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, course, err := r.lookup(studentID, name, section)
	if err != nil {
		return nil, err
	}

	result := &models.DropResult{CourseName: course.Name(), Section: course.Section()}
	roll := course.Roll()
	if !roll.IsEnrolled(student) && !roll.IsWaitlisted(student) {
		return result, nil
	}

	promoted, err := r.dropWithPromotion(ctx, student, course)
	if err != nil {
		return nil, err
	}
	result.Removed = true
	if promoted != nil {
		id := promoted.ID()
		result.PromotedID = &id
	}
	r.invalidate(ctx)
	return result, nil
}

func (r *Registrar) drop(ctx context.Context, student *domain.Student, course *domain.Course) error {
	_, err := r.dropWithPromotion(ctx, student, course)
	return err
}

func (r *Registrar) dropWithPromotion(ctx context.Context, student *domain.Student, course *domain.Course) (*domain.Student, error) {
	promoted, err := course.Roll().Drop(student)
	if err != nil {
		return nil, err
	}
	student.Schedule().RemoveCourse(course)
	r.record(ctx, student, course, models.EnrollmentStatusDropped)
	if promoted != nil {
		r.record(ctx, promoted, course, models.EnrollmentStatusPromoted)
		r.logger.Info("waitlisted student promoted",
			zap.String("student_id", promoted.ID()),
			zap.String("course", course.Name()+"-"+course.Section()),
		)
	}
	return promoted, nil
}

// ResetSchedule drops the student from every scheduled course and clears
// the schedule.
func (r *Registrar) ResetSchedule(ctx context.Context, studentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, err := r.directory.Get(studentID)
	if err != nil {
		return err
	}
	for _, course := range student.Schedule().Courses() {
		if err := r.drop(ctx, student, course); err != nil {
			return err
		}
	}
	student.Schedule().Reset()
	r.invalidate(ctx)
	return nil
}

// Schedule returns the student's schedule view.
func (r *Registrar) Schedule(studentID string) (*models.ScheduleView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	student, err := r.directory.Get(studentID)
	if err != nil {
		return nil, err
	}
	return scheduleView(student), nil
}

// AddEvent blocks out personal time on the student's schedule.
func (r *Registrar) AddEvent(studentID string, req dto.AddEventRequest) (*models.ScheduleView, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	student, err := r.directory.Get(studentID)
	if err != nil {
		return nil, err
	}
	event, err := domain.NewEvent(req.Title, req.MeetingDays, req.StartTime, req.EndTime, req.Details)
	if err != nil {
		return nil, err
	}
	if err := student.Schedule().AddActivity(event); err != nil {
		return nil, err
	}
	return scheduleView(student), nil
}

// SetScheduleTitle renames the student's schedule.
func (r *Registrar) SetScheduleTitle(studentID string, req dto.ScheduleTitleRequest) (*models.ScheduleView, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule title")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	student, err := r.directory.Get(studentID)
	if err != nil {
		return nil, err
	}
	if err := student.Schedule().SetTitle(req.Title); err != nil {
		return nil, err
	}
	return scheduleView(student), nil
}

// ListFaculty returns the faculty directory rows.
func (r *Registrar) ListFaculty() []models.FacultySummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.faculty.Rows()
}

// AddFaculty registers a faculty member.
func (r *Registrar) AddFaculty(req dto.AddFacultyRequest) (*models.FacultySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := r.faculty.Add(req)
	if err != nil {
		return nil, err
	}
	r.logger.Info("faculty added", zap.String("faculty_id", f.ID()))
	summary := f.Summary()
	return &summary, nil
}

// RemoveFaculty deletes a faculty member after unassigning their courses.
func (r *Registrar) RemoveFaculty(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.faculty.Get(id)
	if err != nil {
		return err
	}
	f.Schedule().Reset()
	r.faculty.Remove(id)
	r.invalidate(ctx)
	r.logger.Info("faculty removed", zap.String("faculty_id", id))
	return nil
}

// AssignFaculty makes the faculty member the instructor of the offering. A
// course taught by someone else moves to the new instructor, and returns to
// its previous one when the new schedule refuses it.
func (r *Registrar) AssignFaculty(ctx context.Context, facultyID string, req dto.AssignCourseRequest) (*models.FacultyScheduleView, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	f, course, err := r.lookupFaculty(facultyID, req.CourseName, req.Section)
	if err != nil {
		return nil, err
	}

	previous, err := r.faculty.Get(course.InstructorID())
	if err == nil && previous != f {
		previous.Schedule().RemoveCourse(course)
	} else {
		previous = nil
	}
	if err := f.Schedule().AddCourse(course); err != nil {
		if previous != nil {
			_ = previous.Schedule().AddCourse(course)
		}
		return nil, err
	}
	r.invalidate(ctx)
	r.logger.Info("faculty assigned",
		zap.String("faculty_id", f.ID()),
		zap.String("course", course.Name()+"-"+course.Section()),
		zap.Bool("overloaded", f.IsOverloaded()),
	)
	return facultyScheduleView(f), nil
}

// UnassignFaculty takes the offering off the faculty member's schedule.
func (r *Registrar) UnassignFaculty(ctx context.Context, facultyID, name, section string) (*models.FacultyScheduleView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, course, err := r.lookupFaculty(facultyID, name, section)
	if err != nil {
		return nil, err
	}
	if !f.Schedule().RemoveCourse(course) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course is not assigned to faculty")
	}
	r.invalidate(ctx)
	r.logger.Info("faculty unassigned",
		zap.String("faculty_id", f.ID()),
		zap.String("course", course.Name()+"-"+course.Section()),
	)
	return facultyScheduleView(f), nil
}

// ResetFacultySchedule unassigns every course the faculty member teaches.
func (r *Registrar) ResetFacultySchedule(ctx context.Context, facultyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := r.faculty.Get(facultyID)
	if err != nil {
		return err
	}
	f.Schedule().Reset()
	r.invalidate(ctx)
	return nil
}

// FacultySchedule returns the faculty member's teaching schedule view.
func (r *Registrar) FacultySchedule(facultyID string) (*models.FacultyScheduleView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, err := r.faculty.Get(facultyID)
	if err != nil {
		return nil, err
	}
	return facultyScheduleView(f), nil
}

func (r *Registrar) lookupFaculty(facultyID, name, section string) (*domain.Faculty, *domain.Course, error) {
	f, err := r.faculty.Get(facultyID)
	if err != nil {
		return nil, nil, err
	}
	course, err := r.catalog.Get(name, section)
	if err != nil {
		return nil, nil, err
	}
	return f, course, nil
}

func (r *Registrar) lookup(studentID, name, section string) (*domain.Student, *domain.Course, error) {
	student, err := r.directory.Get(studentID)
	if err != nil {
		return nil, nil, err
	}
	course, err := r.catalog.Get(name, section)
	if err != nil {
		return nil, nil, err
	}
	return student, course, nil
}

func (r *Registrar) record(ctx context.Context, student *domain.Student, course *domain.Course, status models.EnrollmentStatus) {
	r.metrics.RecordEnrollment(status)
	r.audit.Publish(ctx, models.EnrollmentEvent{
		StudentID:  student.ID(),
		CourseName: course.Name(),
		Section:    course.Section(),
		Status:     status,
		OpenSeats:  course.Roll().OpenSeats(),
		Waitlisted: course.Roll().NumberOnWaitlist(),
	})
}

func (r *Registrar) invalidate(ctx context.Context) {
	_ = r.cache.Invalidate(ctx, catalogCachePattern)
}

func courseDetail(course *domain.Course) *models.CourseDetail {
	return &models.CourseDetail{
		CourseRecord:     course.Record(),
		Meeting:          course.Meeting().String(),
		OpenSeats:        course.Roll().OpenSeats(),
		NumberOnWaitlist: course.Roll().NumberOnWaitlist(),
	}
}

func rollSummary(course *domain.Course, includeStudents bool) *models.RollSummary {
	roll := course.Roll()
	summary := &models.RollSummary{
		Name:             course.Name(),
		Section:          course.Section(),
		EnrollmentCap:    roll.EnrollmentCap(),
		OpenSeats:        roll.OpenSeats(),
		NumberOnWaitlist: roll.NumberOnWaitlist(),
	}
	if includeStudents {
		summary.Enrolled = lo.Map(roll.Enrolled(), studentID)
		summary.Waitlist = lo.Map(roll.Waitlist(), studentID)
	}
	return summary
}

func studentID(s *domain.Student, _ int) string { return s.ID() }

func scheduleView(student *domain.Student) *models.ScheduleView {
	schedule := student.Schedule()
	return &models.ScheduleView{
		StudentID: student.ID(),
		Title:     schedule.Title(),
		Credits:   schedule.Credits(),
		Rows:      schedule.ScheduledCourses(),
		Activities: lo.Map(schedule.Activities(), func(a domain.Activity, _ int) []string {
			return a.LongDisplay()
		}),
	}
}

func facultyScheduleView(f *domain.Faculty) *models.FacultyScheduleView {
	return &models.FacultyScheduleView{
		FacultyID:  f.ID(),
		MaxCourses: f.MaxCourses(),
		Courses:    f.Schedule().NumScheduledCourses(),
		Overloaded: f.IsOverloaded(),
		Rows:       f.Schedule().ScheduledCourses(),
	}
}
