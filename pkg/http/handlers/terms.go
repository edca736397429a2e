package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/oarkflow/signup/pkg/libs"
	"github.com/oarkflow/signup/pkg/models"
	"github.com/oarkflow/signup/pkg/utils"
)

const (
	termsAccepted = "accepted"
	termsDeclined = "declined"

	termsCookieMaxAge = 24 * 60 * 60

	msgTermsAccepted = "Thou hast accepted the terms. Mark the box and proceed."
	msgTermsDeclined = "Thou hast declined the terms. The agreement stays sealed until thou acceptest them."
)

func readTerms(c *fiber.Ctx, cfg *libs.Config) models.Terms {
	switch c.Cookies(cfg.TermsCookie) {
	case termsAccepted:
		return models.Terms{Accepted: true}
	case termsDeclined:
		return models.Terms{CheckboxDisabled: true}
	}
	return models.Terms{}
}

func writeTerms(c *fiber.Ctx, cfg *libs.Config, value string) {
	c.Cookie(utils.GetCookie(cfg.HTTPS, cfg.Env, cfg.TermsCookie, value, termsCookieMaxAge))
}

func PostAcceptTerms(c *fiber.Ctx) error {
	cfg := libs.LoadConfig()
	writeTerms(c, cfg, termsAccepted)
	return flash.WithData(c, fiber.Map{
		"notice_type": string(models.NotificationInfo),
		"notice":      msgTermsAccepted,
	}).Redirect(utils.Path(utils.SignupURI), fiber.StatusSeeOther)
}

func PostDeclineTerms(c *fiber.Ctx) error {
	cfg := libs.LoadConfig()
	writeTerms(c, cfg, termsDeclined)
	return flash.WithData(c, fiber.Map{
		"notice_type": string(models.NotificationError),
		"notice":      msgTermsDeclined,
	}).Redirect(utils.Path(utils.SignupURI), fiber.StatusSeeOther)
}
