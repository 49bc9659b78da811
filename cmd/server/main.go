package main // Entry point package

import (
	"log" // Logging library

	_ "github.com/joho/godotenv/autoload" // Load .env into the environment before config runs
	"github.com/labstack/echo/v4"         // Echo web framework

	"github.com/wanderium/travel-agency-api/internal/config"     // Internal config loader
	"github.com/wanderium/travel-agency-api/internal/database"   // Database connector
	"github.com/wanderium/travel-agency-api/internal/handler"    // HTTP handlers
	"github.com/wanderium/travel-agency-api/internal/middleware" // Cache and rate-limit middleware
	"github.com/wanderium/travel-agency-api/internal/queue"      // Background inquiry consumer
	"github.com/wanderium/travel-agency-api/internal/repository" // Data access layer
	"github.com/wanderium/travel-agency-api/internal/router"     // Route registration
	"github.com/wanderium/travel-agency-api/internal/uploader"   // Image hosting client
)

func main() {
	cfg := config.Load() // Load environment config

	// Connect to Postgres; the process cannot serve anything without it.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client disables caching and rate limiting,
	// the middleware degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Repositories
	tours := repository.NewTourRepo(db)
	posts := repository.NewBlogPostRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	categories := repository.NewCategoryRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	content := repository.NewContentRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens)
	adminH := handler.NewAdminHandler(tours, posts, testimonials, categories, inquiries, content)
	publicH := handler.NewPublicHandler(tours, posts, testimonials, categories, content)
	inquiryH := handler.NewInquiryHandler(inquiries)
	uploadH := handler.NewUploadHandler(uploader.New(cfg.UploadEndpoint))

	// Background consumer logging received inquiries; runs its own
	// reconnect loop for the lifetime of the process.
	go func() {
		if err := queue.StartInquiryConsumer(); err != nil {
			log.Printf("inquiry consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, inquiryH, cacheMW, rateMW)
	router.RegisterAdmin(e, adminH, uploadH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
