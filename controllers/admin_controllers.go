package controllers

import (
	"log"

	"mergington-server/repository"
	"mergington-server/services"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	teachers repository.TeacherRepositoryInterface
	sessions *services.SessionService
}

func NewAdminController(teachers repository.TeacherRepositoryInterface, sessions *services.SessionService) *AdminController {
	return &AdminController{teachers: teachers, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credentials against teachers.json and returns a fresh
// admin token for X-Admin-Token on success.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username and password required"})
	}

	ok, err := ac.teachers.Authenticate(req.Username, req.Password)
	if err != nil {
		log.Printf("Error loading teachers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token := ac.sessions.Create(req.Username)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
