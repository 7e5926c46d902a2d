package middleware

import (
	"github.com/elifkaracan/vloggy-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		// Credentialed requests are invalid with a wildcard origin; only
		// allow them when an explicit origin list is configured.
		AllowCredentials: cfg.CORSOrigins != "*",
	})
}
