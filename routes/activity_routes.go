package routes

import (
	"mergington-server/controllers"
	middleware "mergington-server/middlewares"
	"mergington-server/services"

	"github.com/gofiber/fiber/v2"
)

func ActivityRoutes(app *fiber.App, activityController *controllers.ActivityController, sessions *services.SessionService) {
	guard := middleware.AdminToken(sessions)

	app.Get("/activities", activityController.GetActivities)
	app.Get("/activities/export", guard, activityController.ExportRoster)
	app.Post("/activities/:name/signup", guard, activityController.Signup)
	app.Delete("/activities/:name/unregister", guard, activityController.Unregister)
}
