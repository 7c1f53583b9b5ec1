package main

import (
	"log"
	"strconv"

	"mergington-server/configs"
	"mergington-server/controllers"
	"mergington-server/repository"
	"mergington-server/routes"
	"mergington-server/services"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := configs.Load()

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("Invalid PORT %q: %v", cfg.Port, err)
	}

	if err := configs.RegisterService(
		"mergington-server",
		"mergington-server",
		"localhost",
		port,
		"http://localhost:"+cfg.Port+"/health",
	); err != nil {
		log.Printf("Consul service registration failed: %v", err)
	}

	activityRepo, err := repository.NewActivityRepository(cfg.ActivitiesFile())
	if err != nil {
		log.Fatalf("Failed to load activities: %v", err)
	}
	teacherRepo := repository.NewTeacherRepository(cfg.TeachersFile())
	sessions := services.NewSessionService()

	activityController := controllers.NewActivityController(activityRepo)
	adminController := controllers.NewAdminController(teacherRepo, sessions)

	app := fiber.New()

	p := fiberprometheus.New("mergington-server")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	routes.StaticRoutes(app, cfg.StaticDir)
	routes.AdminRoutes(app, adminController)
	routes.ActivityRoutes(app, activityController, sessions)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
