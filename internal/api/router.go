package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nabilsaied15/bibliotheque-api/docs"
	"github.com/nabilsaied15/bibliotheque-api/internal/api/handler"
	"github.com/nabilsaied15/bibliotheque-api/internal/api/middleware"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/service"
	"github.com/nabilsaied15/bibliotheque-api/internal/infrastructure/config"
	mongodb "github.com/nabilsaied15/bibliotheque-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nabilsaied15/bibliotheque-api/internal/infrastructure/db/redis"
	"github.com/nabilsaied15/bibliotheque-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bibliotheque"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer, cfg.JWT.Audience)
	authService := service.NewAuthService(userRepo, tokenService, cfg.BcryptCost)
	bookService := service.NewBookService(bookRepo, log)
	reviewService := service.NewReviewService(reviewRepo, bookRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	authn := middleware.Authenticate(tokenService, userRepo)

	globalLimiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.GlobalMax, cfg.RateLimit.GlobalWindow)
	authLimiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.AuthMax, cfg.RateLimit.AuthWindow)

	// --- API routes ---
	apiGroup := e.Group("/api", middleware.RateLimit(globalLimiter, "global", log))

	apiGroup.GET("/status", handlers.NewStatusHandler().Status)

	authGroup := apiGroup.Group("/auth", middleware.RateLimit(authLimiter, "auth", log))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	apiGroup.GET("/profile", authHandler.Profile, authn)

	books := apiGroup.Group("/books")
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.POST("", bookHandler.Create, authn)
	books.PUT("/:id", bookHandler.Update, authn)
	books.DELETE("/:id", bookHandler.Delete, authn)

	reviews := apiGroup.Group("/reviews")
	reviews.GET("/book/:bookId", reviewHandler.ListByBook)
	reviews.POST("/book/:bookId", reviewHandler.Create, authn)
	reviews.PUT("/:id", reviewHandler.Update, authn)
	reviews.DELETE("/:id", reviewHandler.Delete, authn)

	// --- Health probes (no auth, no rate limit) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
