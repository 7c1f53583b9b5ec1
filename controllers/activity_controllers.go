package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"sort"

	"mergington-server/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ActivityController struct {
	repo repository.ActivityRepositoryInterface
}

func NewActivityController(repo repository.ActivityRepositoryInterface) *ActivityController {
	return &ActivityController{repo: repo}
}

// GetActivities returns the full catalog as a map of name to record.
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ac.repo.All())
}

// Signup registers a student email for an activity. Restricted to
// logged-in teachers via the AdminToken middleware.
func (ac *ActivityController) Signup(c *fiber.Ctx) error {
	name, err := url.QueryUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity name"})
	}

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter required"})
	}

	if err := ac.repo.Signup(name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
		case errors.Is(err, repository.ErrAlreadySignedUp):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student is already signed up"})
		default:
			log.Printf("Error signing up %s for %s: %v", email, name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save activities"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister removes a student email from an activity. Restricted to
// logged-in teachers.
func (ac *ActivityController) Unregister(c *fiber.Ctx) error {
	name, err := url.QueryUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity name"})
	}

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter required"})
	}

	if err := ac.repo.Unregister(name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
		case errors.Is(err, repository.ErrNotSignedUp):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student is not signed up for this activity"})
		default:
			log.Printf("Error unregistering %s from %s: %v", email, name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save activities"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// ExportRoster streams the catalog as an xlsx workbook, one row per
// (activity, participant) pair, activities in name order.
func (ac *ActivityController) ExportRoster(c *fiber.Ctx) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing roster workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Activity")
	f.SetCellValue(sheet, "B1", "Student Email")

	catalog := ac.repo.All()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	row := 2
	for _, name := range names {
		for _, email := range catalog[name].Participants() {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), email)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing roster workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build roster export"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="roster.xlsx"`)
	return c.Send(buf.Bytes())
}
