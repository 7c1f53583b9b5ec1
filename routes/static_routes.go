package routes

import (
	"github.com/gofiber/fiber/v2"
)

// StaticRoutes serves the bundled front-end and redirects the root path
// to it.
func StaticRoutes(app *fiber.App, staticDir string) {
	app.Static("/static", staticDir)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusFound)
	})
}
