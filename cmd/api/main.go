package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campuskit/enrollment-api/api/swagger"
	"github.com/campuskit/enrollment-api/internal/handler"
	"github.com/campuskit/enrollment-api/internal/locking"
	"github.com/campuskit/enrollment-api/internal/middleware"
	"github.com/campuskit/enrollment-api/internal/repository"
	"github.com/campuskit/enrollment-api/internal/service"
	"github.com/campuskit/enrollment-api/internal/store"
	"github.com/campuskit/enrollment-api/pkg/cache"
	"github.com/campuskit/enrollment-api/pkg/config"
	"github.com/campuskit/enrollment-api/pkg/database"
	"github.com/campuskit/enrollment-api/pkg/logger"
	corsmiddleware "github.com/campuskit/enrollment-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campuskit/enrollment-api/pkg/middleware/requestid"
)

// @title Course Enrollment API
// @version 1.0.0
// @description University course enrollment service
// @BasePath /api/v1
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	schemaRepo := repository.NewSchemaRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	professorRepo := repository.NewProfessorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	if cfg.Seed.Enabled {
		seeder := service.NewSeedService(schemaRepo, departmentRepo, professorRepo, courseRepo, scheduleRepo, studentRepo, cfg.Seed, logr)
		if err := seeder.Run(context.Background()); err != nil {
			logr.Sugar().Fatalw("failed to seed database", "error", err)
		}
	}

	cacheClient := redisClient
	if !cfg.Cache.Enabled {
		cacheClient = nil
	}
	cacheRepo := repository.NewCacheRepository(cacheClient, logr)

	metricsSvc := service.NewMetricsService()
	validate := validator.New()
	locks := locking.NewRegistry()
	sqlStore := store.NewSQLStore(db)

	courseSvc := service.NewCourseService(courseRepo, cacheRepo, cfg.Cache.CourseTTL, logr)
	studentSvc := service.NewStudentService(studentRepo, enrollmentRepo)
	professorSvc := service.NewProfessorService(professorRepo)
	enrollmentSvc := service.NewEnrollmentService(sqlStore, locks, cfg.Enrollment.MaxCredits, validate, logr, courseSvc, metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Health:      handler.NewHealthHandler(db, redisClient),
		Students:    handler.NewStudentHandler(studentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Professors:  handler.NewProfessorHandler(professorSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Metrics:     metricsSvc,
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
