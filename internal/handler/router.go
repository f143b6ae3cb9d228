package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/middleware"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
)

// Handlers bundles every HTTP handler served by the API.
type Handlers struct {
	Auth        *AuthHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
	Schedule    *ScheduleHandler
	Students    *StudentHandler
	Faculty     *FacultyHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts health and metrics at the root and the API under prefix.
func RegisterRoutes(r *gin.Engine, prefix string, tokens middleware.TokenValidator, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())
	api.POST("/auth/login", h.Auth.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(tokens))
	secured.GET("/auth/me", h.Auth.Me)

	registrar := middleware.RequireRoles(models.RoleRegistrar)
	student := middleware.RequireRoles(models.RoleStudent)
	teacher := middleware.RequireRoles(models.RoleFaculty)

	courses := secured.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.GET("/export", h.Courses.Export)
	courses.GET("/:name/:section", h.Courses.Get)
	courses.GET("/:name/:section/roll", h.Courses.Roll)
	courses.POST("", registrar, h.Courses.Create)
	courses.DELETE("/:name/:section", registrar, h.Courses.Delete)
	courses.PUT("/:name/:section/cap", registrar, h.Courses.SetCap)

	enrollments := secured.Group("/enrollments", student)
	enrollments.POST("", h.Enrollments.Enroll)
	enrollments.DELETE("/:name/:section", h.Enrollments.Drop)
	secured.GET("/enrollment-events", registrar, h.Enrollments.Events)

	schedule := secured.Group("/schedule", student)
	schedule.GET("", h.Schedule.Get)
	schedule.DELETE("", h.Schedule.Reset)
	schedule.PUT("/title", h.Schedule.SetTitle)
	schedule.POST("/events", h.Schedule.AddEvent)
	schedule.GET("/export", h.Schedule.Export)

	students := secured.Group("/students", registrar)
	students.GET("", h.Students.List)
	students.POST("", h.Students.Create)
	students.DELETE("/:id", h.Students.Delete)

	faculty := secured.Group("/faculty")
	faculty.GET("/me/schedule", teacher, h.Faculty.MySchedule)
	faculty.GET("", registrar, h.Faculty.List)
	faculty.POST("", registrar, h.Faculty.Create)
	faculty.DELETE("/:id", registrar, h.Faculty.Delete)
	faculty.GET("/:id/schedule", registrar, h.Faculty.Schedule)
	faculty.DELETE("/:id/schedule", registrar, h.Faculty.Reset)
	faculty.POST("/:id/courses", registrar, h.Faculty.Assign)
	faculty.DELETE("/:id/courses/:name/:section", registrar, h.Faculty.Unassign)

	secured.GET("/metrics/summary", registrar, h.Metrics.Snapshot)
}
