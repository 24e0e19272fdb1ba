package handlers

import (
	"cricket-club-site/middleware"
	"cricket-club-site/services"
	"cricket-club-site/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps are the services behind the HTTP API.
type Deps struct {
	Auth          *services.AuthService
	HeroSlides    *services.HeroSlideService
	News          *services.NewsService
	Players       *services.PlayerService
	Gallery       *services.GalleryService
	Social        *services.SocialService
	Comments      *services.CommentService
	Registrations *services.RegistrationService
	Stats         *services.StatsService
	Tournaments   *services.TournamentService
	Images        utils.ImageStore
}

type AppConfig struct {
	AllowedOrigins string
	// UploadDir is served at /uploads when set.
	UploadDir string
	// AccessLog turns on per-request logging.
	AccessLog bool
}

// routes bundles what every Setup*Routes function needs.
type routes struct {
	api          fiber.Router
	admin        fiber.Router // /api/admin, already behind requireAdmin
	requireAdmin fiber.Handler
}

func NewApp(d Deps, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    utils.MaxImageSize + 1024*1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.AllowedOrigins != "*", // fiber rejects credentials with a wildcard origin
		MaxAge:           86400,
	}))

	requireAdmin := middleware.AdminAuth(d.Auth)
	api := app.Group("/api")
	r := routes{
		api:          api,
		admin:        api.Group("/admin", requireAdmin),
		requireAdmin: requireAdmin,
	}

	SetupAuthRoutes(r, d.Auth)
	SetupHeroSlideRoutes(r, d.HeroSlides)
	SetupNewsRoutes(r, d.News)
	SetupPlayerRoutes(r, d.Players)
	SetupGalleryRoutes(r, d.Gallery)
	SetupSocialRoutes(r, d.Social)
	SetupCommentRoutes(r, d.Comments)
	SetupRegistrationRoutes(r, d.Registrations)
	SetupStatsRoutes(r, d.Stats)
	SetupTournamentRoutes(r, d.Tournaments)
	SetupUploadRoutes(r, d.Images)

	if cfg.UploadDir != "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	return app
}
