package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/ozan/classtrack/internal/app/auth"
	appControllers "github.com/ozan/classtrack/internal/app/controllers"
	appMigrations "github.com/ozan/classtrack/internal/app/migrations"
	appRepos "github.com/ozan/classtrack/internal/app/repositories"
	appRoutes "github.com/ozan/classtrack/internal/app/routes"
	appServices "github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/config"
	"github.com/ozan/classtrack/internal/db"
	appMiddleware "github.com/ozan/classtrack/internal/middleware"
	pkgAuth "github.com/ozan/classtrack/internal/pkg/auth"
	"github.com/ozan/classtrack/internal/pkg/helpers"
	"github.com/ozan/classtrack/internal/pkg/logger"
	"github.com/ozan/classtrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService             *appServices.AuthService
	UserService             *appServices.UserService
	StudentService          *appServices.StudentService
	LessonPlanService       *appServices.LessonPlanService
	ChapterRecordService    *appServices.ChapterRecordService
	TestService             *appServices.TestService
	HomeworkService         *appServices.HomeworkService
	PerformanceService      *appServices.PerformanceService
	AuthController          *appControllers.AuthController
	UserController          *appControllers.UserController
	StudentController       *appControllers.StudentController
	LessonPlanController    *appControllers.LessonPlanController
	ChapterRecordController *appControllers.ChapterRecordController
	TestController          *appControllers.TestController
	HomeworkController      *appControllers.HomeworkController
	PerformanceController   *appControllers.PerformanceController
	AuthMiddleware          *appMiddleware.AuthMiddleware
	Repos                   *appRepos.Repositories
	JWTService              *pkgAuth.JWTService
	AuthzService            *appAuth.AuthorizationService
	Logger                  zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Stale refresh tokens accumulate between restarts; sweep them here
	if removed, err := deps.Repos.TokenRepository.CleanupExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Cleaned up expired refresh tokens")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
	)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.TokenRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.UserRepository)
	deps.LessonPlanService = appServices.NewLessonPlanService(deps.Repos.LessonPlanRepository)
	deps.ChapterRecordService = appServices.NewChapterRecordService(
		deps.Repos.ChapterRecordRepository,
		deps.Repos.LessonPlanRepository,
		deps.Repos.StudentRepository,
	)
	deps.TestService = appServices.NewTestService(
		deps.Repos.TestRepository,
		deps.Repos.TestResultRepository,
		deps.Repos.LessonPlanRepository,
		deps.Repos.StudentRepository,
	)
	deps.HomeworkService = appServices.NewHomeworkService(
		deps.Repos.HomeworkRepository,
		deps.Repos.HomeworkRecordRepository,
		deps.Repos.LessonPlanRepository,
		deps.Repos.StudentRepository,
	)
	deps.PerformanceService = appServices.NewPerformanceService(
		deps.Repos.LessonPlanRepository,
		deps.Repos.ChapterRecordRepository,
		deps.Repos.TestResultRepository,
		deps.Repos.HomeworkRecordRepository,
		deps.Repos.StudentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.LessonPlanController = appControllers.NewLessonPlanController(deps.LessonPlanService)
	deps.ChapterRecordController = appControllers.NewChapterRecordController(deps.ChapterRecordService)
	deps.TestController = appControllers.NewTestController(deps.TestService)
	deps.HomeworkController = appControllers.NewHomeworkController(deps.HomeworkService)
	deps.PerformanceController = appControllers.NewPerformanceController(deps.PerformanceService, deps.AuthzService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.StudentController,
		deps.LessonPlanController,
		deps.ChapterRecordController,
		deps.TestController,
		deps.HomeworkController,
		deps.PerformanceController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
