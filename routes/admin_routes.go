package routes

import (
	"mergington-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, adminController *controllers.AdminController) {
	app.Post("/admin/login", adminController.Login)
}
