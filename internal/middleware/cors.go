package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ojay234/fullstack-capstone-project/internal/config"
)

// CORS applies the permissive cross-origin policy the frontend relies on.
// The email header rides along on profile updates.
func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Authorization, Accept, email",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	})
}
