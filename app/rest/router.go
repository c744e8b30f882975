package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"api-server/app/port"
	"api-server/app/rest/handlers"
	custommw "api-server/app/rest/middleware"
	"api-server/app/utils/validator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	Logger        *slog.Logger
	LoginUsecase  port.GoogleLoginUsecase
	GetQuestions  port.GetEnglishQuestionsUsecase
	SubmitAnswers port.SubmitEnglishAnswersUsecase
	Tokens        port.TokenService
	Storage       handlers.Pinger
	EnableDebug   bool
}

// NewRouter creates and configures the Echo router.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	v := validator.New()

	authHandler := handlers.NewAuthHandler(config.LoginUsecase, v, config.Logger)
	studyHandler := handlers.NewStudyHandler(config.GetQuestions, config.SubmitAnswers, v, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Storage, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.Tokens, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	auth := v1.Group("/auth")
	auth.POST("/google/login", authHandler.GoogleLogin)

	study := v1.Group("/study")
	study.Use(authMiddleware.RequireAuth())
	study.GET("/english/questions", studyHandler.GetQuestions)
	study.POST("/english/answers", studyHandler.SubmitAnswers)

	return e
}
