package app

import (
	"fmt"

	"github.com/internhub/internhub/internal/config"
	"github.com/internhub/internhub/internal/db"
	"github.com/internhub/internhub/internal/repository"
	"github.com/internhub/internhub/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	UserService        *service.UserService
	ProfileService     *service.ProfileService
	ApplicationService *service.ApplicationService
	ShortlistService   *service.ShortlistService
	EmailService       *service.EmailService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	applicationRepository := repository.NewApplicationRepository(database)
	shortlistRepository := repository.NewShortlistRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		0, // bcrypt.DefaultCost
		cfg.IsProduction(),
	)
	userService := service.NewUserService(userRepository)
	profileService := service.NewProfileService(userRepository, cfg.PhotoMaxBytes, cfg.AboutMaxChars)
	applicationService := service.NewApplicationService(applicationRepository)
	shortlistService := service.NewShortlistService(shortlistRepository)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		UserService:        userService,
		ProfileService:     profileService,
		ApplicationService: applicationService,
		ShortlistService:   shortlistService,
		EmailService:       emailService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
