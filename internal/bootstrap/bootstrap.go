// Package bootstrap assembles the application: configuration, logging,
// database, services and the HTTP router.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/sitehub/internal/app/controllers"
	appMigrations "github.com/yigit/sitehub/internal/app/migrations"
	appRepos "github.com/yigit/sitehub/internal/app/repositories"
	appRoutes "github.com/yigit/sitehub/internal/app/routes"
	appServices "github.com/yigit/sitehub/internal/app/services"
	"github.com/yigit/sitehub/internal/config"
	"github.com/yigit/sitehub/internal/db"
	appMiddleware "github.com/yigit/sitehub/internal/middleware"
	pkgAuth "github.com/yigit/sitehub/internal/pkg/auth"
	"github.com/yigit/sitehub/internal/pkg/email"
	"github.com/yigit/sitehub/internal/pkg/filestorage"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/logger"
	"github.com/yigit/sitehub/internal/seed"
	"github.com/yigit/sitehub/migrations"
	"github.com/yigit/sitehub/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB             *db.PostgresDB
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  level,
		Pretty: cfg.Logging.Format == "text",
	})
	lgr.Info().Str("logLevel", string(level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	pg, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(pg.Pool).Migrate(ctx, migrations.Files); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		pg.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return pg, nil
}

// BuildDependencies initializes repositories, services and controllers, then
// seeds default content.
func BuildDependencies(ctx context.Context, cfg *config.Config, pg *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{DB: pg, Logger: lgr}
	deps.Repos = appRepos.NewRepositories(pg)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.MediaURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		NotifyTo:  cfg.SMTP.NotifyTo,
		UseTLS:    cfg.SMTP.UseTLS,
	}, logger.WithComponent("email"))

	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		lgr.Warn().Msg("No admin account configured; the content API will reject every login")
	}

	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		Admin:    appServices.AdminAccount{Email: cfg.Admin.Email, PasswordHash: cfg.Admin.PasswordHash},
		JWT:      deps.JWTService,
		Notifier: notifier,
		Location: cfg.Location(),
	})

	if err := seed.CreateDefaultData(ctx, deps.Repos, deps.Services, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	svcs := deps.Services
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(svcs.Auth),
		Department: appControllers.NewDepartmentController(svcs.Department),
		News:       appControllers.NewNewsController(svcs.News),
		Course:     appControllers.NewCourseController(svcs.Course),
		Event:      appControllers.NewEventController(svcs.Event),
		Library:    appControllers.NewLibraryController(svcs.Library),
		Exam:       appControllers.NewExamController(svcs.Exam),
		Site:       appControllers.NewSiteController(svcs.Site),
		Inquiry:    appControllers.NewInquiryController(svcs.Inquiry, svcs.Site, cfg.Site.ApplicationRedirectURL),
		Upload:     appControllers.NewUploadController(deps.FileStorage, logger.WithComponent("uploads")),
	}
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(logger.WithComponent("http")), appMiddleware.Recovery(lgr))
	router.MaxMultipartMemory = appControllers.MaxUploadSize

	tmpl, err := web.Templates(web.Funcs(web.FuncOptions{
		SiteName: cfg.Site.Name,
		Location: cfg.Location(),
		MediaURL: deps.FileStorage.URL,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.StaticFS("/static", web.Static())
	router.Static(cfg.Server.MediaURL, deps.FileStorage.BasePath())

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupPages(router, deps.Controllers)
	appRoutes.SetupAPI(router, deps.Controllers, deps.AuthMiddleware, func(c *gin.Context) error {
		return deps.DB.Ping(c)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router, nil
}
