package handlers

import (
	"fraudshield/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	database := "disabled"
	if repositories.DB != nil {
		database = "connected"
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"database":     database,
			"result_store": "ready",
		},
	})
}
