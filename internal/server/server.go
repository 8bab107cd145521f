// Package server contains the HTTP handlers and routing for the portfolio API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"portfolio/internal/assetstore"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	assets         assetstore.Store
	adminRepo      repository.AdminRepository
	aboutService   *service.AboutService
	homeService    *service.HomeService
	skillService   *service.SkillService
	projectService *service.ProjectService
	socialService  *service.SocialMediaService
	workService    *service.WorkExperienceService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	assets, err := assetstore.NewCloudinary(cfg)
	if err != nil {
		return nil, fmt.Errorf("asset store initialization failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, assets)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and the
// asset store.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, assets assetstore.Store) (*Server, error) {
	aboutRepo := repository.NewAboutRepository(db)
	homeRepo := repository.NewHomeRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	socialRepo := repository.NewSocialMediaRepository(db)
	workRepo := repository.NewWorkExperienceRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	prom := middleware.InitMetrics("portfolio-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		assets:         assets,
		adminRepo:      adminRepo,
	}
	server.aboutService = service.NewAboutService(aboutRepo)
	server.homeService = service.NewHomeService(homeRepo, assets)
	server.skillService = service.NewSkillService(skillRepo, assets)
	server.projectService = service.NewProjectService(projectRepo, skillRepo, assets)
	server.socialService = service.NewSocialMediaService(socialRepo, assets)
	server.workService = service.NewWorkExperienceService(workRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and Admin ID
	app.Use(middleware.ContextMiddleware())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)

	// Public content routes
	api.Get("/about", s.GetAbout)
	api.Get("/home", s.GetHome)
	api.Get("/skill", s.GetSkills)
	api.Get("/skill/:id", s.GetSkill)
	api.Get("/projects", s.GetProjects)
	api.Get("/projects/:id", s.GetProject)
	api.Get("/social-media", s.GetSocialMediaLinks)
	api.Get("/social-media/:id", s.GetSocialMediaLink)
	api.Get("/work-experience", s.GetWorkExperiences)
	api.Get("/work-experience/:id", s.GetWorkExperience)

	// Contact form submissions
	api.Post("/contact", middleware.RateLimit(
		s.redis, 5, time.Minute, "contact"), s.SubmitContact)

	// Protected admin routes
	protected := api.Group("", s.AuthRequired())

	protected.Post("/about", s.CreateAbout)
	protected.Put("/about/:id", s.UpdateAbout)
	protected.Delete("/about/:id", s.DeleteAbout)

	protected.Post("/home", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_home"), s.CreateHome)
	protected.Put("/home/:id", s.UpdateHome)
	protected.Delete("/home/:id", s.DeleteHome)

	protected.Post("/skill", s.CreateSkill)
	protected.Put("/skill/:id", s.UpdateSkill)
	protected.Delete("/skill/:id", s.DeleteSkill)

	protected.Post("/projects", s.CreateProject)
	protected.Put("/projects/:id", s.UpdateProject)
	protected.Delete("/projects/:id", s.DeleteProject)

	protected.Post("/social-media", s.CreateSocialMediaLink)
	protected.Patch("/social-media/:id", s.PatchSocialMediaLink)
	protected.Delete("/social-media/:id", s.DeleteSocialMediaLink)

	protected.Post("/work-experience", s.CreateWorkExperience)
	protected.Put("/work-experience/:id", s.UpdateWorkExperience)
	protected.Delete("/work-experience/:id", s.DeleteWorkExperience)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Portfolio API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}
	return nil
}
