package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"userbase/internal/caching"
	"userbase/internal/config"
	"userbase/internal/handlers"
	"userbase/internal/middleware"
	"userbase/internal/repositories"
	"userbase/internal/services"
	"userbase/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	// Database connection pool
	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories and services
	userRepo := repositories.NewUserRepo(pool)
	userSvc := services.NewUserService(userRepo, services.NewBcryptHasher(), cacheSvc)

	// Handlers
	userHandlers := handlers.NewUserHandlers(userSvc)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(cfg.AppEnv)

	// Global middleware: logging, CORS, panic recovery. CORS runs before the
	// router so OPTIONS preflights short-circuit for every path.
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.CORS(middleware.NewCORSConfig(cfg.CORSOrigin)))
	e.Use(echoMiddleware.Recover())

	// Health endpoints
	e.GET("/", handlers.Liveness)
	e.GET("/health", handlers.Liveness)

	// User routes
	api := e.Group("/api")
	if cfg.AuthEnabled {
		api.Use(middleware.RequireAuth(cfg.JWTSecret))
	}
	api.GET("/users", userHandlers.ListUsers)
	api.POST("/users", userHandlers.CreateUser)
	api.GET("/users/:id", userHandlers.GetUser)
	api.PUT("/users/:id", userHandlers.UpdateUser)
	api.DELETE("/users/:id", userHandlers.DeleteUser)
	api.PATCH("/users/:id/toggle-status", userHandlers.ToggleUserStatus)

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()
	log.Printf("userbase v%s listening on port %s (%s)", version, cfg.Port, cfg.AppEnv)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
