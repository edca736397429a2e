package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/signup/pkg/http/responses"
	"github.com/oarkflow/signup/pkg/libs"
	"github.com/oarkflow/signup/pkg/models"
	"github.com/oarkflow/signup/pkg/utils"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// LoginPage is where a successful signup lands; ?value= prefills the
// username.
func LoginPage(c *fiber.Ctx) error {
	cfg := libs.LoadConfig()
	return responses.Render(c, utils.LoginTemplate, fiber.Map{
		"Title":    "Login",
		"AppName":  cfg.AppName,
		"Username": c.Query("value"),
	})
}

func renderErrorPage(c *fiber.Ctx, statusCode int, title, message, description, technical, retryURL string) error {
	errorID := fmt.Sprintf("ERR-%d-%d", time.Now().Unix(), statusCode)
	data := models.ErrorPageData{
		Title:       title,
		StatusCode:  statusCode,
		Message:     message,
		Description: description,
		Technical:   technical,
		RetryURL:    retryURL,
		ErrorID:     errorID,
	}
	if utils.WantsJSON(c) {
		return c.Status(statusCode).JSON(fiber.Map{
			"error":    message,
			"status":   statusCode,
			"error_id": errorID,
		})
	}
	c.Status(statusCode)
	return responses.Render(c, utils.ErrorTemplate, fiber.Map{
		"Title":   title,
		"AppName": libs.LoadConfig().AppName,
		"Error":   data,
	})
}
