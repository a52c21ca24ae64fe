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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/recruitment/internal/app/auth"
	appControllers "github.com/yigit/recruitment/internal/app/controllers"
	appMigrations "github.com/yigit/recruitment/internal/app/migrations"
	appRepos "github.com/yigit/recruitment/internal/app/repositories"
	appRoutes "github.com/yigit/recruitment/internal/app/routes"
	appServices "github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/config"
	"github.com/yigit/recruitment/internal/db"
	appMiddleware "github.com/yigit/recruitment/internal/middleware"
	pkgAuth "github.com/yigit/recruitment/internal/pkg/auth"
	"github.com/yigit/recruitment/internal/pkg/cache"
	"github.com/yigit/recruitment/internal/pkg/events"
	"github.com/yigit/recruitment/internal/pkg/filestorage"
	"github.com/yigit/recruitment/internal/pkg/helpers"
	"github.com/yigit/recruitment/internal/pkg/logger"
	"github.com/yigit/recruitment/internal/pkg/websocket"
	"github.com/yigit/recruitment/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService
	FileStorage  *filestorage.LocalStorage
	Hub          *websocket.Hub
	Redis        *redis.Client // nil when Redis is disabled or unreachable
	Publisher    events.Publisher

	AuthService         appServices.AuthService
	UserService         appServices.UserService
	CandidateService    appServices.CandidateService
	JobService          appServices.JobService
	SkillService        appServices.SkillService
	InterviewService    appServices.InterviewService
	NotificationService appServices.NotificationService
	OfferService        appServices.OfferService
	DashboardService    appServices.DashboardService
	ReportService       appServices.ReportService

	Handlers       appRoutes.Handlers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
			// Startup continues; a partial seed only affects demo data.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// SetupRedis connects to Redis when it is enabled. A nil client disables caching and rate limiting.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, caching and rate limiting off")
		return nil
	}
	return cache.NewRedisClient(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, lgr)
}

// SetupPublisher returns the RabbitMQ publisher, or a no-op publisher when RabbitMQ is disabled.
func SetupPublisher(cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if !cfg.RabbitMQ.Enabled {
		lgr.Info().Msg("RabbitMQ disabled, domain events will not be published")
		return events.NoopPublisher{}
	}
	return events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, lgr.With().Str("component", "publisher").Logger())
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, rdb *redis.Client, publisher events.Publisher, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:    lgr,
		Redis:     rdb,
		Publisher: publisher,
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "websocket").Logger())

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.CandidateRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, deps.Hub, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, publisher, lgr)
	deps.SkillService = appServices.NewSkillService(deps.Repos.SkillRepository)
	deps.JobService = appServices.NewJobService(
		deps.Repos.JobRepository,
		deps.Repos.SkillRepository,
		deps.Repos.CandidateRepository,
		lgr,
	)
	deps.CandidateService = appServices.NewCandidateService(
		deps.Repos.CandidateRepository,
		deps.Repos.JobRepository,
		deps.Repos.SkillRepository,
		deps.Repos.DocumentRepository,
		deps.FileStorage,
		deps.AuthzService,
		filestorage.UploadLimits{
			CVMaxBytes:       cfg.Uploads.CVMaxBytes,
			DocumentMaxBytes: cfg.Uploads.DocumentMaxBytes,
		},
		cfg.Server.BaseURL,
		lgr,
	)
	deps.InterviewService = appServices.NewInterviewService(
		deps.Repos.InterviewRepository,
		deps.Repos.CandidateRepository,
		deps.Repos.JobRepository,
		deps.Repos.UserRepository,
		deps.NotificationService,
		publisher,
		deps.AuthzService,
		lgr,
	)
	deps.OfferService = appServices.NewOfferService(
		deps.Repos.OfferRepository,
		deps.Repos.CandidateRepository,
		deps.Repos.JobRepository,
		deps.NotificationService,
		lgr,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.DashboardRepository,
		deps.Repos.JobRepository,
		deps.Repos.CandidateRepository,
		deps.Repos.InterviewRepository,
		deps.Repos.OfferRepository,
		deps.Repos.UserRepository,
		deps.NotificationService,
		lgr,
	)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Handlers = appRoutes.Handlers{
		Auth:         appControllers.NewAuthController(deps.AuthService, lgr),
		User:         appControllers.NewUserController(deps.UserService, lgr),
		Candidate:    appControllers.NewCandidateController(deps.CandidateService, lgr),
		Job:          appControllers.NewJobController(deps.JobService, deps.SkillService, lgr),
		Interview:    appControllers.NewInterviewController(deps.InterviewService, lgr),
		Offer:        appControllers.NewOfferController(deps.OfferService, lgr),
		Notification: appControllers.NewNotificationController(deps.NotificationService, lgr),
		Dashboard:    appControllers.NewDashboardController(deps.DashboardService, lgr),
		Report:       appControllers.NewReportController(deps.ReportService, lgr),
		WebSocket:    websocket.NewHandler(deps.Hub, lgr),
	}

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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router, deps.Handlers, appRoutes.Middlewares{
		Auth: deps.AuthMiddleware,
		AuthRateLimit: appMiddleware.RateLimit(appMiddleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval,
			Prefix:         cfg.RateLimit.Prefix,
		}, deps.Redis, lgr),
		ReportCache: appMiddleware.ResponseCache(appMiddleware.CacheConfig{
			Enabled: cfg.Cache.Enabled,
			TTL:     cfg.Cache.TTL,
			Prefix:  cfg.Cache.Prefix,
		}, deps.Redis, lgr),
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
