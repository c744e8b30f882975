package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"api-server/app/config"
	"api-server/app/driver/googleauth"
	"api-server/app/driver/memory"
	"api-server/app/driver/mongodb"
	"api-server/app/port"
	"api-server/app/rest"
	"api-server/app/rest/handlers"
	"api-server/app/usecase"
	"api-server/app/utils/token"
)

// Container holds all dependencies for the application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB       *mongodb.DB
	Verifier port.IdentityVerifier
	Tokens   port.TokenService

	// Repositories
	Users     port.UserRepository
	Words     port.EnglishWordRepository
	Histories port.StudyHistoryRepository

	// Usecases
	LoginUsecase  port.GoogleLoginUsecase
	GetQuestions  port.GetEnglishQuestionsUsecase
	SubmitAnswers port.SubmitEnglishAnswersUsecase
}

// NewContainer creates and initializes a new dependency injection container.
// The storage backend is picked by configuration; everything downstream of
// the port interfaces is wired identically for both.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	switch cfg.Storage {
	case config.StorageMongo:
		db, err := mongodb.NewConnection(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		container.DB = db
		container.Users = mongodb.NewUserRepository(db, logger)
		container.Words = mongodb.NewEnglishWordRepository(db, logger)
		container.Histories = mongodb.NewStudyHistoryRepository(db, logger)
	case config.StorageMemory:
		container.Users = memory.NewUserRepository()
		container.Words = memory.NewEnglishWordRepository()
		container.Histories = memory.NewStudyHistoryRepository()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}

	container.Verifier = googleauth.NewVerifier(cfg, logger)
	container.Tokens = token.NewJWTService(token.JWTConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	})

	container.LoginUsecase = usecase.NewGoogleLoginUsecase(container.Verifier, container.Users, container.Tokens, logger)
	container.GetQuestions = usecase.NewGetEnglishQuestionsUsecase(container.Words, logger)
	container.SubmitAnswers = usecase.NewSubmitEnglishAnswersUsecase(container.Histories, logger)

	logger.Info("container initialized", "storage", cfg.Storage)
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router.
func (c *Container) CreateRouter() *echo.Echo {
	var storage handlers.Pinger
	if c.DB != nil {
		storage = c.DB
	}

	return rest.NewRouter(rest.RouterConfig{
		Logger:        c.Logger,
		LoginUsecase:  c.LoginUsecase,
		GetQuestions:  c.GetQuestions,
		SubmitAnswers: c.SubmitAnswers,
		Tokens:        c.Tokens,
		Storage:       storage,
		EnableDebug:   c.Config.LogLevel == "debug",
	})
}

// Close closes all resources.
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container closed")
	return nil
}
