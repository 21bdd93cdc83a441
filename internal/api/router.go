package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/hireproof/backcheck/internal/api/handler"
	"github.com/hireproof/backcheck/internal/api/middleware"
	"github.com/hireproof/backcheck/internal/core/service"
	"github.com/hireproof/backcheck/internal/infrastructure/config"
	"github.com/hireproof/backcheck/internal/infrastructure/db/postgres"
	redisinfra "github.com/hireproof/backcheck/internal/infrastructure/db/redis"
	"github.com/hireproof/backcheck/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *postgres.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backcheck"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	courtSearchRepo := postgres.NewCourtSearchRepository(db)
	preAdverseRepo := postgres.NewPreAdverseActionRepository(db)
	denylist := redisinfra.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.JWTExpiresIn)
	candidateService := service.NewCandidateService(candidateRepo, reportRepo, courtSearchRepo, preAdverseRepo, db, log)
	reportService := service.NewReportService(reportRepo, candidateRepo, log)
	courtSearchService := service.NewCourtSearchService(courtSearchRepo, candidateRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	candidateHandler := handler.NewCandidateHandler(candidateService)
	reportHandler := handler.NewReportHandler(reportService)
	courtSearchHandler := handler.NewCourtSearchHandler(courtSearchService)

	requireAuth := middleware.Auth(cfg.JWTSecret, denylist)

	v1 := e.Group("/api/v1")

	// --- User routes ---
	users := v1.Group("/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/signin", authHandler.Signin)
	users.POST("/logout", authHandler.Logout, requireAuth)

	// --- Candidate routes ---
	candidates := v1.Group("/candidates", requireAuth)
	candidates.GET("", candidateHandler.List)
	candidates.POST("", candidateHandler.Create)
	candidates.GET("/:id", candidateHandler.Get)
	candidates.PUT("/:id", candidateHandler.Update)
	candidates.DELETE("/:id", candidateHandler.Delete)
	candidates.PUT("/:id/pre-adverse-action", candidateHandler.UpdatePreAdverseAction)

	// --- Report routes ---
	// The /id subtree addresses a report by its own id; the rest of the tree
	// addresses it by the owning candidate.
	reports := v1.Group("/reports", requireAuth)
	reports.POST("/:candidateId", reportHandler.Create)
	reports.GET("/:candidateId", reportHandler.GetByCandidate)
	reports.PUT("/:candidateId", reportHandler.UpdateByCandidate)
	reports.DELETE("/:candidateId", reportHandler.DeleteByCandidate)
	reports.GET("/id/:reportId", reportHandler.GetByID)
	reports.PUT("/id/:reportId", reportHandler.UpdateByID)
	reports.DELETE("/id/:reportId", reportHandler.DeleteByID)

	// --- Court search routes ---
	courtSearches := v1.Group("/court_searches", requireAuth)
	courtSearches.POST("/:candidateId", courtSearchHandler.Create)
	courtSearches.GET("/candidate/:candidateId", courtSearchHandler.ListByCandidate)
	courtSearches.GET("/:id", courtSearchHandler.Get)
	courtSearches.PATCH("/:id", courtSearchHandler.UpdateStatus)
	courtSearches.DELETE("/:id", courtSearchHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
