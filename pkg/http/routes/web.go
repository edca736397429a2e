package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/signup/pkg/http/handlers"
	"github.com/oarkflow/signup/pkg/http/middlewares"
	"github.com/oarkflow/signup/pkg/libs"
	"github.com/oarkflow/signup/pkg/utils"
)

func Setup(prefix string, router fiber.Router) {
	cfg := libs.LoadConfig()
	limit := middlewares.RateLimitWithMax(cfg.RateLimitRequests, cfg.RateLimitWindow)
	route := router.Group(prefix, middlewares.RequestLogger)
	route.Get(utils.HealthURI, handlers.HealthCheck)
	route.Get(utils.LoginURI, handlers.LoginPage)
	route.Get(utils.SignupURI, middlewares.NoCache, handlers.SignupPage)
	route.Post(utils.SignupURI, limit, middlewares.NoCache, handlers.PostSignup)
	route.Post(utils.TermsAcceptURI, handlers.PostAcceptTerms)
	route.Post(utils.TermsDeclineURI, handlers.PostDeclineTerms)
}
