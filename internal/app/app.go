package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/notebook/internal/config"
	"github.com/templui/notebook/internal/db"
	"github.com/templui/notebook/internal/repository"
	"github.com/templui/notebook/internal/service"
	"github.com/templui/notebook/internal/storage"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	Storage        storage.Storage
	FileService    *service.FileService
	EventService   *service.EventService
	ProfileService *service.ProfileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create tables if missing
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	fileRepository := repository.NewFileRepository(database)
	eventRepository := repository.NewEventRepository(database)
	profileRepository := repository.NewProfileRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	fileService := service.NewFileService(fileRepository, fileStorage)
	eventService := service.NewEventService(eventRepository)
	profileService := service.NewProfileService(profileRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		Storage:        fileStorage,
		FileService:    fileService,
		EventService:   eventService,
		ProfileService: profileService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
