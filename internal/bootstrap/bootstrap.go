package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lramirez/acredita/docs" // generated swagger docs
	appControllers "github.com/lramirez/acredita/internal/app/controllers"
	appMigrations "github.com/lramirez/acredita/internal/app/migrations"
	appRepos "github.com/lramirez/acredita/internal/app/repositories"
	appRoutes "github.com/lramirez/acredita/internal/app/routes"
	appServices "github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/config"
	"github.com/lramirez/acredita/internal/db"
	"github.com/lramirez/acredita/internal/middleware"
	pkgAuth "github.com/lramirez/acredita/internal/pkg/auth"
	"github.com/lramirez/acredita/internal/pkg/helpers"
	"github.com/lramirez/acredita/internal/pkg/logger"
	"github.com/lramirez/acredita/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CarreraService    appServices.CarreraService
	MateriaService    appServices.MateriaService
	AtributoService   appServices.AtributoService
	CriterioService   appServices.CriterioService
	NivelService      appServices.NivelService
	EstudianteService appServices.EstudianteService
	UsuarioService    appServices.UsuarioService
	AlumnoService     appServices.AlumnoService

	AuthController       *appControllers.AuthController
	CarreraController    *appControllers.CarreraController
	MateriaController    *appControllers.MateriaController
	AtributoController   *appControllers.AtributoController
	CriterioController   *appControllers.CriterioController
	NivelController      *appControllers.NivelController
	EstudianteController *appControllers.EstudianteController
	UsuarioController    *appControllers.UsuarioController
	AlumnoController     *appControllers.AlumnoController

	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the role catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		SessionExp:  helpers.ParseDuration(cfg.JWT.SessionExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UsuarioRepository, deps.JWTService)
	deps.CarreraService = appServices.NewCarreraService(deps.Repos.CarreraRepository)
	deps.MateriaService = appServices.NewMateriaService(deps.Repos.MateriaRepository)
	deps.AtributoService = appServices.NewAtributoService(deps.Repos.AtributoRepository)
	deps.CriterioService = appServices.NewCriterioService(deps.Repos.CriterioRepository)
	deps.NivelService = appServices.NewNivelService(deps.Repos.MateriaAtributoRepository, deps.Repos.AtributoRepository)
	deps.EstudianteService = appServices.NewEstudianteService(deps.Repos.EstudianteRepository, cfg.Survey.EmailDomain)
	deps.UsuarioService = appServices.NewUsuarioService(deps.Repos.UsuarioRepository)
	deps.AlumnoService = appServices.NewAlumnoService(
		deps.Repos.EncuestaRepository,
		deps.Repos.EstudianteRepository,
		deps.Repos.MateriaRepository,
		cfg.Survey.PeriodoActual,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService)
	deps.CarreraController = appControllers.NewCarreraController(deps.CarreraService)
	deps.MateriaController = appControllers.NewMateriaController(deps.MateriaService)
	deps.AtributoController = appControllers.NewAtributoController(deps.AtributoService)
	deps.CriterioController = appControllers.NewCriterioController(deps.CriterioService)
	deps.NivelController = appControllers.NewNivelController(deps.NivelService)
	deps.EstudianteController = appControllers.NewEstudianteController(deps.EstudianteService)
	deps.UsuarioController = appControllers.NewUsuarioController(deps.UsuarioService)
	deps.AlumnoController = appControllers.NewAlumnoController(deps.AlumnoService)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.CarreraController,
		deps.MateriaController,
		deps.AtributoController,
		deps.CriterioController,
		deps.NivelController,
		deps.EstudianteController,
		deps.UsuarioController,
		deps.AlumnoController,
		deps.JWTService,
	)

	lgr.Info().Msg("Router configured")
	return router
}
