package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/eggseedd/reviem-pilem-api/database"
	"github.com/eggseedd/reviem-pilem-api/internal/config"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/handler"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/middleware"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/repository"
	"github.com/eggseedd/reviem-pilem-api/internal/http-api/service"
)

func main() {
	// 1️⃣ Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2️⃣ Connect to the database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// 3️⃣ Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	listRepo := repository.NewWatchListRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// 4️⃣ Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	filmService := service.NewFilmService(filmRepo, reviewRepo)
	genreService := service.NewGenreService(genreRepo)
	listService := service.NewWatchListService(listRepo, filmRepo)
	reviewService := service.NewReviewService(reviewRepo, listRepo, filmRepo)
	userService := service.NewUserService(userRepo, listRepo)

	// 5️⃣ Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Reviem Pilem API",
		})
	})

	// 6️⃣ Routes
	handler.NewAuthHandler(authService).RegisterRoutes(r.Group("/auth"))
	handler.NewFilmHandler(filmService, authService).RegisterRoutes(r.Group("/films"))
	handler.NewGenreHandler(genreService, authService).RegisterRoutes(r.Group("/genres"))
	handler.NewReviewHandler(reviewService, authService).RegisterRoutes(r.Group("/reviews"))
	handler.NewUserHandler(userService, listService, authService).RegisterRoutes(r.Group("/user"))

	httpServer := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server running", "addr", httpServer)
	if err := r.Run(httpServer); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
