package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/pack-scheduler-api/api/swagger"
	"github.com/noah-isme/pack-scheduler-api/internal/handler"
	"github.com/noah-isme/pack-scheduler-api/internal/middleware"
	"github.com/noah-isme/pack-scheduler-api/internal/repository"
	"github.com/noah-isme/pack-scheduler-api/internal/service"
	"github.com/noah-isme/pack-scheduler-api/pkg/cache"
	"github.com/noah-isme/pack-scheduler-api/pkg/config"
	"github.com/noah-isme/pack-scheduler-api/pkg/database"
	"github.com/noah-isme/pack-scheduler-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/pack-scheduler-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/pack-scheduler-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

// @title Pack Scheduler API
// @version 1.0.0
// @description Course registration and schedule planning
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	metrics := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{}

	cacheRepo, redisClient := newCacheRepository(ctx, cfg, logr)
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	var eventStore *repository.EnrollmentEventRepository
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect audit database", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		if err := database.EnsureSchema(ctx, db); err != nil {
			logr.Fatal("failed to prepare audit schema", zap.Error(err))
		}
		eventStore = repository.NewEnrollmentEventRepository(db)
		checks["database"] = pingDB(db)
	}
	audit := newAuditService(eventStore, metrics, validate, logr, cfg.Audit)
	audit.Start(ctx)

	tokens, err := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		logr.Fatal("invalid token configuration", zap.Error(err))
	}

	catalog := service.NewCatalog(repository.NewCourseRecordRepository(cfg.Storage.CatalogFile), logr)
	directory := service.NewDirectory(repository.NewStudentRecordRepository(cfg.Storage.DirectoryFile), validate, logr)
	faculty := service.NewFacultyDirectory(repository.NewFacultyRecordRepository(cfg.Storage.FacultyFile), validate, logr)
	registrar, err := service.NewRegistrar(cfg.Registrar, service.RegistrarDeps{
		Catalog:   catalog,
		Directory: directory,
		Faculty:   faculty,
		Tokens:    tokens,
		Audit:     audit,
		Cache:     cacheSvc,
		Metrics:   metrics,
		Validator: validate,
		Logger:    logr,
	})
	if err != nil {
		logr.Fatal("failed to create registrar", zap.Error(err))
	}
	if err := registrar.Load(ctx); err != nil {
		logr.Fatal("failed to load registration data", zap.Error(err))
	}
	logr.Info("registration data loaded",
		zap.Int("courses", catalog.Len()),
		zap.Int("students", directory.Len()),
		zap.Int("faculty", faculty.Len()),
	)

	exporter := service.NewExportService(logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.RegisterRoutes(r, cfg.APIPrefix, tokens, handler.Handlers{
		Auth:        handler.NewAuthHandler(registrar),
		Courses:     handler.NewCourseHandler(registrar, exporter),
		Enrollments: handler.NewEnrollmentHandler(registrar, audit),
		Schedule:    handler.NewScheduleHandler(registrar, exporter),
		Students:    handler.NewStudentHandler(registrar),
		Faculty:     handler.NewFacultyHandler(registrar),
		Metrics:     handler.NewMetricsHandler(metrics, checks),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("http shutdown failed", zap.Error(err))
	}
	if err := registrar.Close(shutdownCtx); err != nil {
		logr.Error("failed to save registration data", zap.Error(err))
	}
}

// newCacheRepository prefers Redis and falls back to the in-process cache
// when Redis cannot be reached.
func newCacheRepository(ctx context.Context, cfg *config.Config, logr *zap.Logger) (service.CacheRepository, *redis.Client) {
	if !cfg.Cache.Enabled || cfg.Redis.Host == "" {
		return repository.NewMemoryCacheRepository(cfg.Cache.TTL), nil
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		return repository.NewMemoryCacheRepository(cfg.Cache.TTL), nil
	}
	return repository.NewCacheRepository(client, logr), client
}

func newAuditService(store *repository.EnrollmentEventRepository, metrics *service.MetricsService, validate *validator.Validate, logr *zap.Logger, cfg config.AuditConfig) *service.AuditService {
	auditCfg := service.AuditConfig{Enabled: cfg.Enabled, Workers: cfg.Workers}
	if store == nil {
		return service.NewAuditService(nil, metrics, validate, logr, auditCfg)
	}
	return service.NewAuditService(store, metrics, validate, logr, auditCfg)
}

func pingDB(db *sqlx.DB) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}
