package routes

import (
	"time"

	"github.com/confessly/confessly-backend/internal/config"
	"github.com/confessly/confessly-backend/internal/handlers"
	"github.com/confessly/confessly-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	confessionHandler *handlers.ConfessionHandler,
	commentHandler *handlers.CommentHandler,
	adviceHandler *handlers.AdviceHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth gets a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Creation and reads are anonymous
	api.Post("/confessions", confessionHandler.Create)
	api.Get("/confessions", confessionHandler.List)
	api.Get("/confessions/:id", confessionHandler.Get)
	api.Get("/trending", confessionHandler.Trending)

	// Votes and comments require a session
	api.Patch("/confessions/:id/vote", middleware.JWTProtected(cfg), confessionHandler.Vote)
	api.Post("/confessions/:id/comments", middleware.JWTProtected(cfg), commentHandler.Add)

	// Content reports
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)

	// The upstream AI call is expensive: 5 req/min per IP
	api.Post("/advice", limiter.New(limiter.Config{
		Max:               5,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), adviceHandler.Generate)

	// Admin moderation panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Delete("/confessions/:id", confessionHandler.Delete)
	admin.Patch("/confessions/:id/feature", confessionHandler.Feature)
	admin.Delete("/comments/:id", commentHandler.Delete)
	admin.Get("/reports", reportHandler.List)
	admin.Put("/reports/:id", reportHandler.Action)
}
