package routes

import (
	"time"

	"github.com/elifkaracan/vloggy-backend/internal/config"
	"github.com/elifkaracan/vloggy-backend/internal/handlers"
	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	socialHandler *handlers.SocialHandler,
	profileHandler *handlers.ProfileHandler,
	postHandler *handlers.PostHandler,
	videoHandler *handlers.VideoHandler,
	notificationHandler *handlers.NotificationHandler,
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

	// Auth endpoints are public, with a stricter rate limit
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
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Everything below requires an authenticated actor.
	protected := api.Group("", middleware.JWTProtected(cfg))

	// Block registry
	protected.Post("/blocks", socialHandler.BlockUser)
	protected.Get("/blocks", socialHandler.ListBlocked)
	protected.Delete("/blocks/:id", socialHandler.UnblockUser)

	// Follow registry
	protected.Post("/follows", socialHandler.FollowUser)
	protected.Delete("/follows/:id", socialHandler.UnfollowUser)

	// Profiles
	protected.Get("/users/:id", profileHandler.Get)
	protected.Get("/users/:id/followers", profileHandler.Followers)
	protected.Get("/users/:id/following", profileHandler.Following)

	// Posts + engagement
	protected.Post("/posts", postHandler.Create)
	protected.Get("/posts", postHandler.Feed)
	protected.Get("/posts/:id", postHandler.Get)
	protected.Delete("/posts/:id", postHandler.Delete)
	protected.Post("/posts/:id/hide", postHandler.Hide)
	protected.Delete("/posts/:id/hide", postHandler.Unhide)
	protected.Post("/posts/:id/reactions", postHandler.React)
	protected.Get("/posts/:id/reactions", postHandler.Reactions)
	protected.Post("/posts/:id/like", postHandler.Like)
	protected.Post("/posts/:id/comments", postHandler.AddComment)
	protected.Get("/posts/:id/comments", postHandler.Comments)

	// Vlogs + engagement
	protected.Post("/videos", videoHandler.Create)
	protected.Get("/videos", videoHandler.Feed)
	protected.Get("/videos/:id", videoHandler.Get)
	protected.Delete("/videos/:id", videoHandler.Delete)
	protected.Post("/videos/:id/reactions", videoHandler.React)
	protected.Get("/videos/:id/reactions", videoHandler.Reactions)
	protected.Post("/videos/:id/like", videoHandler.Like)
	protected.Post("/videos/:id/comments", videoHandler.AddComment)
	protected.Get("/videos/:id/comments", videoHandler.Comments)

	// Notifications
	protected.Get("/notifications", notificationHandler.List)
	protected.Put("/notifications/:id/read", notificationHandler.MarkRead)
	protected.Get("/notifications/reactors", notificationHandler.Reactors)
	protected.Get("/notifications/followers", notificationHandler.Followers)
}
