// The static site server: serves the built frontend bundle the way the
// original giftwebsite process did, on its own port.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/ojay234/fullstack-capstone-project/internal/config"
	"github.com/ojay234/fullstack-capstone-project/internal/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New())

	// /app is a client-side route; it gets index.html like /.
	app.Get("/app", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.SiteDir, "index.html"))
	})

	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.Dir(cfg.SiteDir),
		Index: "index.html",
	}))

	slog.Info("site server starting", "port", cfg.SitePort, "dir", cfg.SiteDir)
	if err := app.Listen(":" + cfg.SitePort); err != nil {
		slog.Error("site server failed to start", "error", err)
		os.Exit(1)
	}
}
