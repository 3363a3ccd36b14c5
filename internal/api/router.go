package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/wattwise/energy-system/internal/api/handler"
	"github.com/wattwise/energy-system/internal/api/middleware"
	"github.com/wattwise/energy-system/internal/core/security"
	"github.com/wattwise/energy-system/internal/core/service"
	"github.com/wattwise/energy-system/internal/infrastructure/config"
	"github.com/wattwise/energy-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/wattwise/energy-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The dashboard frontend is served from another origin.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("energy"))

	// --- Dependencies ---
	tokens, err := security.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	applianceRepo := postgres.NewApplianceRepository(db)
	consumptionRepo := postgres.NewConsumptionRepository(db)
	summaryCache := redisinfra.NewSummaryCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	applianceService := service.NewApplianceService(accountRepo, applianceRepo, log)
	dashboardService := service.NewDashboardService(accountRepo, applianceRepo, consumptionRepo, summaryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	applianceHandler := handler.NewApplianceHandler(applianceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(tokens, userRepo)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/healthz", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	root := e.Group(cfg.APIPrefix)

	auth := root.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/token", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.POST("/logout", authHandler.Logout)

	appliances := root.Group("/appliances", authRequired)
	appliances.POST("", applianceHandler.Create)
	appliances.GET("", applianceHandler.List)
	appliances.POST("/:id/control", applianceHandler.Control)

	data := root.Group("/data", authRequired)
	data.GET("/summary", dashboardHandler.Summary)
	data.GET("/consumption/trend", dashboardHandler.Trend)
	data.GET("/consumption/factors", dashboardHandler.Factors)
	data.GET("/weather", dashboardHandler.Weather)
	data.GET("/electricity-rate", dashboardHandler.CurrentRate)

	return e, nil
}
